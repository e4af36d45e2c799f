package dto

import (
	"hms/internal/domains/review/model"
	gModel "hms/shared/model"
	"hms/shared/timezone"
)

type CreateReviewRequest struct {
	HotelID    string `json:"hotel_id"    validate:"required,max=20"`
	CustomerID string `json:"customer_id" validate:"required,max=20"`
	Rating     int    `json:"rating"      validate:"required,min=1,max=5"`
	Comment    string `json:"comment"     validate:"omitempty,max=1000"`
}

// ToModel dates the review today in the application timezone.
func (c *CreateReviewRequest) ToModel(reviewID string) model.Review {
	now := timezone.Now()

	return model.Review{
		ReviewID:   reviewID,
		HotelID:    c.HotelID,
		CustomerID: c.CustomerID,
		Rating:     c.Rating,
		Comment:    c.Comment,
		ReviewDate: gModel.NewDate(timezone.Today()),
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type CreateReviewResponse struct {
	Message  string `json:"message"`
	ReviewID string `json:"review_id"`
}
