package repository

import (
	"context"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *ReviewRepository) GetByProperty(ctx context.Context, propertyID int64) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) Update(ctx context.Context, id, reviewerID int64, updates map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("id = ? AND reviewer_id = ?", id, reviewerID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id, reviewerID int64) error {
	res := r.db.WithContext(ctx).
		Delete(&domain.Review{}, "id = ? AND reviewer_id = ?", id, reviewerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
