package payment

import (
	"context"
	"fmt"
	"log"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"
)

type Service struct {
	payments *repository.PaymentRepository
	gateway  Gateway
	loggerf  func(format string, args ...any)
}

func NewService(payments *repository.PaymentRepository, gateway Gateway) *Service {
	return &Service{
		payments: payments,
		gateway:  gateway,
		loggerf:  log.Printf,
	}
}

// Charge records a processing payment, authorizes it at the gateway, and
// settles the row. A declined charge is marked failed with the gateway's
// reason and the decline is returned to the caller.
func (s *Service) Charge(ctx context.Context, bookingID int64, amount float64, currency, method string) (*domain.Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if currency == "" {
		currency = "USD"
	}
	if method == "" {
		method = "card"
	}

	p := &domain.Payment{
		BookingID: bookingID,
		Amount:    amount,
		Currency:  currency,
		Method:    method,
		Status:    domain.PaymentProcessing,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	result, err := s.gateway.Authorize(ctx, amount, currency, method)
	if err != nil {
		if mferr := s.payments.MarkFailed(ctx, p.ID, err.Error()); mferr != nil {
			s.loggerf("level=error msg=\"mark payment failed\" payment_id=%d err=%v", p.ID, mferr)
		}
		return nil, fmt.Errorf("%w: %v", ErrDeclined, err)
	}

	changed, err := s.payments.MarkCompleted(ctx, p.ID, result.IntentID, result.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("settle payment: %w", err)
	}
	if !changed {
		s.loggerf("level=warn msg=\"payment already settled\" payment_id=%d", p.ID)
	}

	settled, err := s.payments.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return settled, nil
}

func (s *Service) GetByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	return s.payments.GetByBooking(ctx, bookingID)
}
