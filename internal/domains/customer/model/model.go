package model

import "hms/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID       = "customer_id"
	FieldFullName = "full_name"
	FieldEmail    = "email"
)

type Customer struct {
	CustomerID string `db:"customer_id"`
	FullName   string `db:"full_name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	City       string `db:"city"`
	Country    string `db:"country"`
	model.Metadata
}
