package domain

import "time"

type AnalyticsEvent struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	UserID     *int64    `json:"user_id,omitempty" gorm:"index"`
	SessionID  string    `json:"session_id" gorm:"index"`
	EventType  string    `json:"event_type" gorm:"index"`
	Page       string    `json:"page,omitempty"`
	Properties any       `json:"properties,omitempty" gorm:"serializer:json"`
	OccurredAt time.Time `json:"timestamp"`
}

func (AnalyticsEvent) TableName() string { return "analytics_events" }

type EmailStatus string

const (
	EmailPending EmailStatus = "pending"
	EmailSent    EmailStatus = "sent"
	EmailFailed  EmailStatus = "failed"
)

// EmailNotification is the delivery log for outbound mail. Actual sending is
// delegated to a provider behind the mailer module; rows here track intent
// and outcome.
type EmailNotification struct {
	ID             int64       `json:"id" gorm:"primaryKey"`
	TemplateName   string      `json:"template_name"`
	RecipientEmail string      `json:"recipient_email" gorm:"index"`
	Subject        string      `json:"subject"`
	Variables      any         `json:"variables,omitempty" gorm:"serializer:json"`
	Status         EmailStatus `json:"status"`
	SentAt         *time.Time  `json:"sent_at,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

func (EmailNotification) TableName() string { return "email_notifications" }
