package booking

import (
	"context"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByTraveler(ctx context.Context, travelerID int64) ([]domain.Booking, error)
	GetByProperty(ctx context.Context, propertyID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, at time.Time) error
}

type PropertyReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// PaymentProcessor submits a charge for a persisted booking. The returned
// payment is terminal: completed, or failed with an error.
type PaymentProcessor interface {
	Charge(ctx context.Context, bookingID int64, amount float64, currency, method string) (*domain.Payment, error)
}

// ConfirmationMailer delivers the booking confirmation email. Best-effort
// from the lifecycle's point of view.
type ConfirmationMailer interface {
	SendBookingConfirmation(ctx context.Context, to, propertyName string, checkIn, checkOut time.Time, total float64) error
}

// NotificationSender raises in-app notifications for booking events.
type NotificationSender interface {
	NotifyBookingConfirmed(ctx context.Context, userID, bookingID int64, propertyName string) error
	NotifyBookingCancelled(ctx context.Context, userID, bookingID int64, reason string) error
}
