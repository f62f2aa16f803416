package booking

import (
	"context"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
)

// Service covers booking reads and cancellation. Submissions go through the
// Controller.
type Service struct {
	bookings   BookingRepository
	properties PropertyReader
	notifs     NotificationSender
}

func NewService(bookings BookingRepository, properties PropertyReader, notifs NotificationSender) *Service {
	return &Service{
		bookings:   bookings,
		properties: properties,
		notifs:     notifs,
	}
}

func (s *Service) GetMyBookings(ctx context.Context, travelerID int64) ([]domain.Booking, error) {
	return s.bookings.GetByTraveler(ctx, travelerID)
}

// GetByID enforces that only the traveler or the property host may read a
// booking.
func (s *Service) GetByID(ctx context.Context, bookingID, actorID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.TravelerID != actorID {
		property, err := s.properties.GetByID(ctx, b.PropertyID)
		if err != nil {
			return nil, err
		}
		if property.HostID != actorID {
			return nil, ErrForbidden
		}
	}
	return b, nil
}

func (s *Service) GetByProperty(ctx context.Context, propertyID, actorID int64) ([]domain.Booking, error) {
	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.HostID != actorID {
		return nil, ErrForbidden
	}
	return s.bookings.GetByProperty(ctx, propertyID)
}

// Cancel transitions a booking to cancelled. Both the traveler and the host
// may cancel; a cancelled booking admits no further transitions, and the row
// is kept for the audit trail.
func (s *Service) Cancel(ctx context.Context, bookingID, actorID int64, reason string) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, bookingID, actorID)
	if err != nil {
		return nil, err
	}

	if b.Status == domain.BookingCancelled {
		return nil, ErrAlreadyCancelled
	}

	if err := s.bookings.Cancel(ctx, bookingID, time.Now().UTC()); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, b.TravelerID, b.ID, reason)
	}

	return s.bookings.GetByID(ctx, bookingID)
}
