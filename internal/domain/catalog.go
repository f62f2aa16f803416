package domain

import "time"

type Destination struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" validate:"required"`
	Country     string    `json:"country"`
	Region      string    `json:"region,omitempty"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Destination) TableName() string { return "destinations" }

type Property struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	HostID        int64     `json:"host_id" gorm:"index" validate:"required"`
	DestinationID int64     `json:"destination_id" gorm:"index" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description,omitempty" gorm:"type:text"`
	PropertyType  string    `json:"property_type"`
	PricePerNight float64   `json:"price_per_night" validate:"required,gt=0"`
	MaxGuests     int       `json:"max_guests" validate:"required,gte=1"`
	Bedrooms      int       `json:"bedrooms,omitempty"`
	Bathrooms     int       `json:"bathrooms,omitempty"`
	Images        []string  `json:"images,omitempty" gorm:"serializer:json"`
	Amenities     []string  `json:"amenities,omitempty" gorm:"serializer:json"`
	IsAvailable   bool      `json:"is_available" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Destination *Destination `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
	Host        *User        `json:"host,omitempty" gorm:"foreignKey:HostID"`
}

func (Property) TableName() string { return "properties" }
