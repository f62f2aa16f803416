package domain

import "time"

type NotificationType string

const (
	NotifBooking   NotificationType = "booking"
	NotifPayment   NotificationType = "payment"
	NotifMessage   NotificationType = "message"
	NotifReminder  NotificationType = "reminder"
	NotifPromotion NotificationType = "promotion"
	NotifSystem    NotificationType = "system"
)

type Notification struct {
	ID        int64            `json:"id" gorm:"primaryKey"`
	UserID    int64            `json:"user_id" gorm:"index"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	Read      bool             `json:"read" gorm:"default:false"`
	Data      any              `json:"data,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
