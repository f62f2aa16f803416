package booking

import (
	"context"
	"testing"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetByIDAllowsTravelerAndHostOnly(t *testing.T) {
	bookings := new(mockBookingRepo)
	properties := new(mockPropertyReader)

	stored := &domain.Booking{ID: 42, PropertyID: 7, TravelerID: 3, Status: domain.BookingConfirmed}
	bookings.On("GetByID", mock.Anything, int64(42)).Return(stored, nil)
	properties.On("GetByID", mock.Anything, int64(7)).Return(availableProperty(), nil)

	svc := NewService(bookings, properties, nil)

	got, err := svc.GetByID(context.Background(), 42, 3)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	got, err = svc.GetByID(context.Background(), 42, 9) // property host
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = svc.GetByID(context.Background(), 42, 100)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetByPropertyRequiresOwnership(t *testing.T) {
	bookings := new(mockBookingRepo)
	properties := new(mockPropertyReader)

	properties.On("GetByID", mock.Anything, int64(7)).Return(availableProperty(), nil)
	bookings.On("GetByProperty", mock.Anything, int64(7)).
		Return([]domain.Booking{{ID: 1}, {ID: 2}}, nil)

	svc := NewService(bookings, properties, nil)

	list, err := svc.GetByProperty(context.Background(), 7, 9)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.GetByProperty(context.Background(), 7, 3)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancelTransitionsAndNotifies(t *testing.T) {
	bookings := new(mockBookingRepo)
	properties := new(mockPropertyReader)
	notifs := new(mockNotifier)

	pending := &domain.Booking{ID: 42, PropertyID: 7, TravelerID: 3, Status: domain.BookingPending}
	cancelled := &domain.Booking{ID: 42, PropertyID: 7, TravelerID: 3, Status: domain.BookingCancelled}

	bookings.On("GetByID", mock.Anything, int64(42)).Return(pending, nil).Once()
	bookings.On("Cancel", mock.Anything, int64(42), mock.Anything).Return(nil)
	notifs.On("NotifyBookingCancelled", mock.Anything, int64(3), int64(42), "change of plans").Return(nil)
	bookings.On("GetByID", mock.Anything, int64(42)).Return(cancelled, nil).Once()

	svc := NewService(bookings, properties, notifs)

	got, err := svc.Cancel(context.Background(), 42, 3, "change of plans")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)
	notifs.AssertExpectations(t)
}

func TestCancelIsRejectedOnCancelledBooking(t *testing.T) {
	bookings := new(mockBookingRepo)
	properties := new(mockPropertyReader)

	cancelled := &domain.Booking{ID: 42, PropertyID: 7, TravelerID: 3, Status: domain.BookingCancelled}
	bookings.On("GetByID", mock.Anything, int64(42)).Return(cancelled, nil)

	svc := NewService(bookings, properties, nil)

	_, err := svc.Cancel(context.Background(), 42, 3, "")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	bookings.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}
