package review

type CreateReviewRequest struct {
	PropertyID int64  `json:"property_id" binding:"required" validate:"required,gt=0"`
	BookingID  int64  `json:"booking_id" binding:"required" validate:"required,gt=0"`
	Rating     int    `json:"rating" binding:"required" validate:"required,gte=1,lte=5"`
	Comment    string `json:"comment" validate:"max=4000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment" validate:"omitempty,max=4000"`
}
