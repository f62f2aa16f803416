package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking rows are never deleted; cancellation is a status transition so the
// reservation history stays auditable.
type Booking struct {
	ID              int64         `json:"id" gorm:"primaryKey"`
	PropertyID      int64         `json:"property_id" gorm:"index" validate:"required"`
	TravelerID      int64         `json:"traveler_id" gorm:"index" validate:"required"`
	CheckIn         time.Time     `json:"check_in_date" validate:"required"`
	CheckOut        time.Time     `json:"check_out_date" validate:"required"`
	Guests          int           `json:"guests" validate:"required,gte=1"`
	TotalPrice      float64       `json:"total_price" validate:"gte=0"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty" gorm:"type:text"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Traveler *User     `json:"traveler,omitempty" gorm:"foreignKey:TravelerID"`
}

func (Booking) TableName() string { return "bookings" }
