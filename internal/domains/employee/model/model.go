package model

import "hms/shared/model"

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID   = "employee_id"
	FieldRole = "role"

	// RoleEmployee is the only role allowed to file maintenance records.
	RoleEmployee = "employee"
)

type Employee struct {
	EmployeeID string `db:"employee_id"`
	FullName   string `db:"full_name"`
	Email      string `db:"email"`
	Role       string `db:"role"`
	model.Metadata
}
