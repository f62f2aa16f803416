package repository

import (
	"context"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"

	"gorm.io/gorm"
)

type EmailRepository struct {
	db *gorm.DB
}

func NewEmailRepository(db *gorm.DB) *EmailRepository {
	return &EmailRepository{db: db}
}

func (r *EmailRepository) Create(ctx context.Context, e *domain.EmailNotification) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EmailRepository) MarkSent(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.EmailNotification{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":  domain.EmailSent,
			"sent_at": at,
		}).Error
}

func (r *EmailRepository) MarkFailed(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.EmailNotification{}).
		Where("id = ?", id).
		Update("status", domain.EmailFailed).Error
}
