package model

import "hms/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "review_id"
	FieldHotelID    = "hotel_id"
	FieldCustomerID = "customer_id"
	FieldRating     = "rating"
	FieldReviewDate = "review_date"
)

type Review struct {
	ReviewID   string     `db:"review_id"`
	HotelID    string     `db:"hotel_id"`
	CustomerID string     `db:"customer_id"`
	Rating     int        `db:"rating"`
	Comment    string     `db:"comment"`
	ReviewDate model.Date `db:"review_date"`
	model.Metadata
}

// Detail is a review with the reviewer's name.
type Detail struct {
	Review
	CustomerName *string `db:"customer_name" table:"customers" column:"full_name"`
}

func (Detail) GetJoinQuery() string {
	return "LEFT JOIN customers ON customers.customer_id = reviews.customer_id"
}

type Summary struct {
	HotelID       string  `db:"hotel_id"`
	AverageRating float64 `db:"average_rating"`
	TotalReviews  int     `db:"total_reviews"`
}
