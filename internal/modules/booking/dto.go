package booking

import "time"

// SubmitBookingRequest is the validated form payload for one booking attempt.
type SubmitBookingRequest struct {
	PropertyID      int64
	TravelerID      int64
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	SpecialRequests string
	Currency        string
	PaymentMethod   string
}

type submitBookingBody struct {
	PropertyID      int64  `json:"property_id" binding:"required"`
	CheckIn         string `json:"check_in_date" binding:"required"`
	CheckOut        string `json:"check_out_date" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests"`
	Currency        string `json:"currency"`
	PaymentMethod   string `json:"payment_method"`
}

type cancelBookingBody struct {
	Reason string `json:"reason"`
}

type validationErrorDetail struct {
	Field string `json:"field"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

func toValidationDetails(errs []ValidationError) []validationErrorDetail {
	out := make([]validationErrorDetail, 0, len(errs))
	for _, e := range errs {
		out = append(out, validationErrorDetail{
			Field: e.Field,
			Code:  e.Code(),
			Error: e.Err.Error(),
		})
	}
	return out
}
