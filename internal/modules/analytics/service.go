package analytics

import (
	"context"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	repo *repository.AnalyticsRepository
}

func NewService(repo *repository.AnalyticsRepository) *Service {
	return &Service{repo: repo}
}

// Track records one event. Anonymous events get a fresh session id so the
// row is still groupable; the id is returned for the client to reuse.
func (s *Service) Track(ctx context.Context, userID *int64, req TrackEventRequest) (string, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	e := &domain.AnalyticsEvent{
		UserID:     userID,
		SessionID:  sessionID,
		EventType:  req.EventType,
		Page:       req.Page,
		Properties: req.Properties,
		OccurredAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, e); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *Service) BuildReport(ctx context.Context, from, to time.Time) (*Report, error) {
	totals, err := s.repo.BookingTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	usersByRole, err := s.repo.UsersByRole(ctx, from, to)
	if err != nil {
		return nil, err
	}
	propsByType, err := s.repo.PropertiesByType(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &Report{
		From:             from,
		To:               to,
		Bookings:         totals.Count,
		Revenue:          totals.Revenue,
		UsersByRole:      usersByRole,
		PropertiesByType: propsByType,
	}, nil
}

func (s *Service) BuildMetrics(ctx context.Context, from, to time.Time) (*Metrics, error) {
	m := &Metrics{From: from, To: to}

	counts := []struct {
		eventType string
		dst       *int64
	}{
		{"page_view", &m.PageViews},
		{"search", &m.Searches},
		{"booking_completed", &m.Conversions},
		{"error", &m.Errors},
	}
	for _, c := range counts {
		n, err := s.repo.CountByType(ctx, c.eventType, from, to)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return m, nil
}
