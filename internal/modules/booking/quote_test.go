package booking

import (
	"testing"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
		wantErr  error
	}{
		{"one night", date(2026, 6, 1), date(2026, 6, 2), 1, nil},
		{"week", date(2026, 6, 1), date(2026, 6, 8), 7, nil},
		{"partial day rounds up", date(2026, 6, 1), date(2026, 6, 2).Add(6 * time.Hour), 2, nil},
		{"same instant", date(2026, 6, 1), date(2026, 6, 1), 0, ErrInvalidDateRange},
		{"checkout before checkin", date(2026, 6, 8), date(2026, 6, 1), 0, ErrInvalidDateRange},
		{"across DST-free month boundary", date(2026, 1, 30), date(2026, 2, 2), 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeNights(tt.checkIn, tt.checkOut)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeNightsAgreesWithHourArithmetic(t *testing.T) {
	// Sweep a range of stay lengths: nights must equal the ceiling of
	// elapsed hours over 24 for every span.
	checkIn := date(2026, 3, 1)
	for hours := 1; hours <= 24*14; hours += 7 {
		checkOut := checkIn.Add(time.Duration(hours) * time.Hour)
		got, err := ComputeNights(checkIn, checkOut)
		require.NoError(t, err)

		want := hours / 24
		if hours%24 != 0 {
			want++
		}
		assert.Equal(t, want, got, "span of %d hours", hours)
	}
}

func TestComputeTotalPrice(t *testing.T) {
	total, err := ComputeTotalPrice(3, 120)
	require.NoError(t, err)
	assert.Equal(t, 360.0, total)

	_, err = ComputeTotalPrice(3, 0)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = ComputeTotalPrice(3, -10)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = ComputeTotalPrice(0, 120)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestComputeTotalPriceIsStable(t *testing.T) {
	// Quoting the same stay twice must yield the identical figure.
	first, err := ComputeTotalPrice(11, 133.33)
	require.NoError(t, err)
	second, err := ComputeTotalPrice(11, 133.33)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateGuestCount(t *testing.T) {
	assert.NoError(t, ValidateGuestCount(1, 4))
	assert.NoError(t, ValidateGuestCount(4, 4))
	assert.ErrorIs(t, ValidateGuestCount(5, 4), ErrGuestLimitExceeded)
	assert.ErrorIs(t, ValidateGuestCount(0, 4), ErrGuestLimitExceeded)
	assert.ErrorIs(t, ValidateGuestCount(-1, 4), ErrGuestLimitExceeded)
}

func TestValidateBookingRequestCollectsEveryFailure(t *testing.T) {
	property := &domain.Property{
		ID:            1,
		PricePerNight: 0,
		MaxGuests:     2,
	}
	req := SubmitBookingRequest{
		PropertyID: 1,
		CheckIn:    date(2026, 6, 8),
		CheckOut:   date(2026, 6, 1),
		Guests:     5,
		FirstName:  "",
		LastName:   " ",
		Email:      "",
	}

	errs := ValidateBookingRequest(req, property)
	require.Len(t, errs, 6)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{
		"check_out_date", "price_per_night", "guests",
		"first_name", "last_name", "email",
	}, fields)
}

func TestValidateBookingRequestPassesCleanRequest(t *testing.T) {
	property := &domain.Property{
		ID:            1,
		PricePerNight: 150,
		MaxGuests:     4,
	}
	req := SubmitBookingRequest{
		PropertyID: 1,
		CheckIn:    date(2026, 6, 1),
		CheckOut:   date(2026, 6, 5),
		Guests:     2,
		FirstName:  "Tom",
		LastName:   "Reed",
		Email:      "tom@example.com",
	}

	assert.Empty(t, ValidateBookingRequest(req, property))
}

func TestValidationErrorCodes(t *testing.T) {
	assert.Equal(t, "INVALID_DATE_RANGE", ValidationError{Err: ErrInvalidDateRange}.Code())
	assert.Equal(t, "INVALID_RATE", ValidationError{Err: ErrInvalidRate}.Code())
	assert.Equal(t, "GUEST_LIMIT_EXCEEDED", ValidationError{Err: ErrGuestLimitExceeded}.Code())
	assert.Equal(t, "MISSING_REQUIRED_FIELD", ValidationError{Err: ErrMissingField}.Code())
}
