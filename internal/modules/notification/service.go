package notification

import (
	"context"
	"fmt"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"
)

// Service owns the durable notification rows and pushes every insert
// through the hub. It satisfies Store, so a Feed can sit directly on top
// of it.
type Service struct {
	repo *repository.NotificationRepository
	hub  *Hub
}

func NewService(repo *repository.NotificationRepository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// Create inserts the notification and publishes it to the owner's
// listeners. Publishing is best-effort; the row is durable either way.
func (s *Service) Create(ctx context.Context, userID int64, typ domain.NotificationType, title, message string, data any) (*domain.Notification, error) {
	n := &domain.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
		Data:    data,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Publish(*n)
	}
	return n, nil
}

func (s *Service) FetchRecent(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	return s.repo.GetByUserID(ctx, userID, limit)
}

// List returns the recent notifications together with the unread count
// across all of the user's rows, not just the returned page.
func (s *Service) List(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	list, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}

// NewFeed builds a feed over this service and subscribes it to pushes.
// The caller owns the subscription and must Close it when done.
func (s *Service) NewFeed(userID int64) (*Feed, *Subscription) {
	feed := NewFeed(userID, s)
	sub := s.hub.Subscribe(userID, feed.OnPush)
	return feed, sub
}

func (s *Service) NotifyBookingConfirmed(ctx context.Context, userID, bookingID int64, propertyName string) error {
	_, err := s.Create(ctx, userID, domain.NotifBooking,
		"Booking confirmed",
		fmt.Sprintf("Your booking at %s is confirmed.", propertyName),
		map[string]any{"booking_id": bookingID})
	return err
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, userID, bookingID int64, reason string) error {
	msg := "Your booking has been cancelled."
	if reason != "" {
		msg = fmt.Sprintf("Your booking has been cancelled: %s", reason)
	}
	_, err := s.Create(ctx, userID, domain.NotifBooking,
		"Booking cancelled", msg,
		map[string]any{"booking_id": bookingID})
	return err
}

func (s *Service) NotifyPaymentCompleted(ctx context.Context, userID, bookingID int64, amount float64, currency string) error {
	_, err := s.Create(ctx, userID, domain.NotifPayment,
		"Payment received",
		fmt.Sprintf("We received your payment of %.2f %s.", amount, currency),
		map[string]any{"booking_id": bookingID})
	return err
}
