package domain

import "time"

type Review struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	PropertyID int64     `json:"property_id" gorm:"index" validate:"required"`
	BookingID  int64     `json:"booking_id" gorm:"uniqueIndex" validate:"required"`
	ReviewerID int64     `json:"reviewer_id" gorm:"index"`
	Rating     int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`

	Reviewer *User `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
}

func (Review) TableName() string { return "reviews" }
