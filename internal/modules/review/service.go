package review

import (
	"context"
	"errors"
	"strings"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	reviews  *repository.ReviewRepository
	bookings *repository.BookingRepository
}

func NewService(reviews *repository.ReviewRepository, bookings *repository.BookingRepository) *Service {
	return &Service{reviews: reviews, bookings: bookings}
}

// Create accepts one review per booking, from the traveler who stayed.
// The one-per-booking rule is enforced by the unique index on booking_id,
// so concurrent submissions cannot slip a duplicate through.
func (s *Service) Create(ctx context.Context, reviewerID int64, req CreateReviewRequest) (*domain.Review, error) {
	booking, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.TravelerID != reviewerID {
		return nil, ErrNotYourBooking
	}
	if booking.PropertyID != req.PropertyID {
		return nil, ErrWrongProperty
	}
	if booking.Status != domain.BookingConfirmed {
		return nil, ErrBookingNotStayed
	}

	rev := &domain.Review{
		PropertyID: req.PropertyID,
		BookingID:  req.BookingID,
		ReviewerID: reviewerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviews.Create(ctx, rev); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return rev, nil
}

func (s *Service) ListByProperty(ctx context.Context, propertyID int64) ([]domain.Review, error) {
	return s.reviews.GetByProperty(ctx, propertyID)
}

func (s *Service) Update(ctx context.Context, id, reviewerID int64, req UpdateReviewRequest) error {
	updates := map[string]any{}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Comment != nil {
		updates["comment"] = *req.Comment
	}
	if len(updates) == 0 {
		return nil
	}

	if err := s.reviews.Update(ctx, id, reviewerID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id, reviewerID int64) error {
	if err := s.reviews.Delete(ctx, id, reviewerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
