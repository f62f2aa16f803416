package repository

import (
	"context"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Insert(ctx context.Context, e *domain.AnalyticsEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AnalyticsRepository) CountByType(ctx context.Context, eventType string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.AnalyticsEvent{}).
		Where("event_type = ? AND occurred_at >= ? AND occurred_at <= ?", eventType, from, to).
		Count(&count).Error
	return count, err
}

func (r *AnalyticsRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("occurred_at < ?", cutoff).
		Delete(&domain.AnalyticsEvent{})
	return res.RowsAffected, res.Error
}

// Report aggregates below read across entity tables for the date-range
// reporting endpoint.

type BookingTotals struct {
	Count   int64
	Revenue float64
}

func (r *AnalyticsRepository) BookingTotals(ctx context.Context, from, to time.Time) (BookingTotals, error) {
	var t BookingTotals
	row := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS revenue").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Row()
	err := row.Scan(&t.Count, &t.Revenue)
	return t, err
}

func (r *AnalyticsRepository) UsersByRole(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	return r.groupCount(ctx, &domain.User{}, "role", from, to)
}

func (r *AnalyticsRepository) PropertiesByType(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	return r.groupCount(ctx, &domain.Property{}, "property_type", from, to)
}

func (r *AnalyticsRepository) groupCount(ctx context.Context, model any, column string, from, to time.Time) (map[string]int64, error) {
	type bucket struct {
		Key   string
		Count int64
	}

	var rows []bucket
	err := r.db.WithContext(ctx).
		Model(model).
		Select(column+" AS key, COUNT(*) AS count").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Group(column).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, b := range rows {
		out[b.Key] = b.Count
	}
	return out, nil
}
