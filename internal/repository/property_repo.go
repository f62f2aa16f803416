package repository

import (
	"context"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"

	"gorm.io/gorm"
)

// PropertyFilter mirrors the search surface of the listing API. Zero values
// mean "no constraint".
type PropertyFilter struct {
	DestinationID   int64
	DestinationName string
	PropertyType    string
	MinGuests       int
	PriceMin        float64
	PriceMax        float64
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Search returns available properties only, newest first. Availability is a
// flat is_available flag; there is no per-date overlap check against existing
// bookings.
func (r *PropertyRepository) Search(ctx context.Context, f PropertyFilter) ([]domain.Property, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Preload("Destination").
		Preload("Host").
		Where("is_available = ?", true)

	if f.DestinationID > 0 {
		q = q.Where("destination_id = ?", f.DestinationID)
	}
	if f.DestinationName != "" {
		q = q.Joins("JOIN destinations ON destinations.id = properties.destination_id").
			Where("destinations.name LIKE ?", "%"+f.DestinationName+"%")
	}
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.MinGuests > 0 {
		q = q.Where("max_guests >= ?", f.MinGuests)
	}
	if f.PriceMin > 0 {
		q = q.Where("price_per_night >= ?", f.PriceMin)
	}
	if f.PriceMax > 0 {
		q = q.Where("price_per_night <= ?", f.PriceMax)
	}

	var out []domain.Property
	err := q.Order("properties.created_at DESC").Find(&out).Error
	return out, err
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Preload("Host").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) GetByHost(ctx context.Context, hostID int64) ([]domain.Property, error) {
	var out []domain.Property
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Property, error) {
	if err := r.db.WithContext(ctx).Model(&domain.Property{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Property{}, "id = ?", id).Error
}
