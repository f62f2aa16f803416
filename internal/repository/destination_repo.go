package repository

import (
	"context"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"

	"gorm.io/gorm"
)

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) GetAll(ctx context.Context) ([]domain.Destination, error) {
	var out []domain.Destination
	err := r.db.WithContext(ctx).Order("name").Find(&out).Error
	return out, err
}

func (r *DestinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	var d domain.Destination
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DestinationRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Destination, error) {
	if err := r.db.WithContext(ctx).Model(&domain.Destination{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *DestinationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Destination{}, "id = ?", id).Error
}
