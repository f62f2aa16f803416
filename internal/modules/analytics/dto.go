package analytics

import "time"

type TrackEventRequest struct {
	EventType  string         `json:"event_type" binding:"required" validate:"required,max=64"`
	Page       string         `json:"page" validate:"max=256"`
	SessionID  string         `json:"session_id" validate:"omitempty,uuid4"`
	Properties map[string]any `json:"properties"`
}

type Report struct {
	From             time.Time        `json:"from"`
	To               time.Time        `json:"to"`
	Bookings         int64            `json:"bookings"`
	Revenue          float64          `json:"revenue"`
	UsersByRole      map[string]int64 `json:"users_by_role"`
	PropertiesByType map[string]int64 `json:"properties_by_type"`
}

type Metrics struct {
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
	PageViews   int64     `json:"page_views"`
	Searches    int64     `json:"searches"`
	Conversions int64     `json:"conversions"`
	Errors      int64     `json:"errors"`
}
