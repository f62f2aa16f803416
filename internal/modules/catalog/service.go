package catalog

import (
	"context"
	"errors"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	destinations *repository.DestinationRepository
	properties   *repository.PropertyRepository
}

func NewService(destinations *repository.DestinationRepository, properties *repository.PropertyRepository) *Service {
	return &Service{destinations: destinations, properties: properties}
}

func (s *Service) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.GetAll(ctx)
}

func (s *Service) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) CreateDestination(ctx context.Context, req CreateDestinationRequest) (*domain.Destination, error) {
	d := &domain.Destination{
		Name:        req.Name,
		Country:     req.Country,
		Region:      req.Region,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.destinations.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) SearchProperties(ctx context.Context, f repository.PropertyFilter) ([]domain.Property, error) {
	return s.properties.Search(ctx, f)
}

func (s *Service) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) GetHostProperties(ctx context.Context, hostID int64) ([]domain.Property, error) {
	return s.properties.GetByHost(ctx, hostID)
}

func (s *Service) CreateProperty(ctx context.Context, hostID int64, req CreatePropertyRequest) (*domain.Property, error) {
	if _, err := s.GetDestination(ctx, req.DestinationID); err != nil {
		return nil, err
	}

	p := &domain.Property{
		HostID:        hostID,
		DestinationID: req.DestinationID,
		Name:          req.Name,
		Description:   req.Description,
		PropertyType:  req.PropertyType,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Images:        req.Images,
		Amenities:     req.Amenities,
		IsAvailable:   true,
	}
	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.properties.GetByID(ctx, p.ID)
}

// UpdateProperty applies the patch after verifying ownership.
func (s *Service) UpdateProperty(ctx context.Context, id, hostID int64, req UpdatePropertyRequest) (*domain.Property, error) {
	existing, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.HostID != hostID {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PropertyType != nil {
		updates["property_type"] = *req.PropertyType
	}
	if req.PricePerNight != nil {
		updates["price_per_night"] = *req.PricePerNight
	}
	if req.MaxGuests != nil {
		updates["max_guests"] = *req.MaxGuests
	}
	if req.Bedrooms != nil {
		updates["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		updates["bathrooms"] = *req.Bathrooms
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}
	if req.Amenities != nil {
		updates["amenities"] = req.Amenities
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if len(updates) == 0 {
		return existing, nil
	}
	return s.properties.Update(ctx, id, updates)
}

func (s *Service) DeleteProperty(ctx context.Context, id, hostID int64) error {
	existing, err := s.GetProperty(ctx, id)
	if err != nil {
		return err
	}
	if existing.HostID != hostID {
		return ErrForbidden
	}
	return s.properties.Delete(ctx, id)
}
