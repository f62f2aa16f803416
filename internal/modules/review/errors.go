package review

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotYourBooking   = errors.New("booking does not belong to reviewer")
	ErrWrongProperty    = errors.New("booking is for a different property")
	ErrAlreadyReviewed  = errors.New("booking already reviewed")
	ErrBookingNotStayed = errors.New("only confirmed bookings can be reviewed")
	ErrNotFound         = errors.New("review not found")
)
