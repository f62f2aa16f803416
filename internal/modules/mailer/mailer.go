package mailer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"
)

// Provider delivers a rendered message. The log provider stands in until an
// SMTP or transactional-mail integration lands.
type Provider interface {
	Deliver(ctx context.Context, to, subject, template string, vars map[string]any) error
}

type LogProvider struct{}

func (LogProvider) Deliver(_ context.Context, to, subject, template string, _ map[string]any) error {
	log.Printf("level=info msg=\"email delivered\" to=%s subject=%q template=%s", to, subject, template)
	return nil
}

// Service logs every outbound message as a pending row, hands it to the
// provider, and settles the row to sent or failed.
type Service struct {
	emails   *repository.EmailRepository
	provider Provider
}

func NewService(emails *repository.EmailRepository, provider Provider) *Service {
	return &Service{emails: emails, provider: provider}
}

func (s *Service) Send(ctx context.Context, to, subject, template string, vars map[string]any) error {
	row := &domain.EmailNotification{
		TemplateName:   template,
		RecipientEmail: to,
		Subject:        subject,
		Variables:      vars,
		Status:         domain.EmailPending,
	}
	if err := s.emails.Create(ctx, row); err != nil {
		return fmt.Errorf("log email: %w", err)
	}

	if err := s.provider.Deliver(ctx, to, subject, template, vars); err != nil {
		if mferr := s.emails.MarkFailed(ctx, row.ID); mferr != nil {
			log.Printf("level=error msg=\"mark email failed\" email_id=%d err=%v", row.ID, mferr)
		}
		return err
	}
	return s.emails.MarkSent(ctx, row.ID, time.Now())
}

func (s *Service) SendBookingConfirmation(ctx context.Context, to, propertyName string, checkIn, checkOut time.Time, total float64) error {
	return s.Send(ctx, to,
		fmt.Sprintf("Booking confirmed: %s", propertyName),
		"booking_confirmation",
		map[string]any{
			"property_name":  propertyName,
			"check_in_date":  checkIn.Format("2006-01-02"),
			"check_out_date": checkOut.Format("2006-01-02"),
			"total_price":    total,
		})
}

func (s *Service) SendBookingCancellation(ctx context.Context, to, propertyName, reason string) error {
	return s.Send(ctx, to,
		fmt.Sprintf("Booking cancelled: %s", propertyName),
		"booking_cancellation",
		map[string]any{
			"property_name": propertyName,
			"reason":        reason,
		})
}
