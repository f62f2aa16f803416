package domain

import "time"

type PaymentStatus string

const (
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
)

type Payment struct {
	ID              int64         `json:"id" gorm:"primaryKey"`
	BookingID       int64         `json:"booking_id" gorm:"index"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	Method          string        `json:"method"`
	Status          PaymentStatus `json:"status"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"`
	TransactionID   string        `json:"transaction_id,omitempty"`
	FailureReason   string        `json:"failure_reason,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
