package booking

import (
	"strings"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
)

// Pure price and validation arithmetic. No I/O here; the lifecycle controller
// and handlers call into these.

const hoursPerNight = 24

// ComputeNights returns the whole-day span between check-in and check-out.
// A checkout at any time on a given calendar day occupies through the prior
// night only, so partial days round up in the provider's favor.
func ComputeNights(checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, ErrInvalidDateRange
	}

	hours := checkOut.Sub(checkIn).Hours()
	nights := int(hours) / hoursPerNight
	if hours > float64(nights*hoursPerNight) {
		nights++
	}
	return nights, nil
}

// ComputeTotalPrice is exact multiplication; repeated quoting of the same
// stay must never drift.
func ComputeTotalPrice(nights int, nightlyRate float64) (float64, error) {
	if nightlyRate <= 0 {
		return 0, ErrInvalidRate
	}
	if nights < 1 {
		return 0, ErrInvalidDateRange
	}
	return float64(nights) * nightlyRate, nil
}

func ValidateGuestCount(requested, maxAllowed int) error {
	if requested < 1 || requested > maxAllowed {
		return ErrGuestLimitExceeded
	}
	return nil
}

// ValidateBookingRequest runs every check and returns the full list of
// failures so the caller can surface all problems at once. It never
// short-circuits.
func ValidateBookingRequest(req SubmitBookingRequest, property *domain.Property) []ValidationError {
	var errs []ValidationError

	if _, err := ComputeNights(req.CheckIn, req.CheckOut); err != nil {
		errs = append(errs, ValidationError{Field: "check_out_date", Err: err})
	}
	if property.PricePerNight <= 0 {
		errs = append(errs, ValidationError{Field: "price_per_night", Err: ErrInvalidRate})
	}
	if err := ValidateGuestCount(req.Guests, property.MaxGuests); err != nil {
		errs = append(errs, ValidationError{Field: "guests", Err: err})
	}

	required := []struct {
		field string
		value string
	}{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"email", req.Email},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, ValidationError{Field: f.field, Err: ErrMissingField})
		}
	}

	return errs
}
