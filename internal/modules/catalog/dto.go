package catalog

type CreateDestinationRequest struct {
	Name        string `json:"name" binding:"required" validate:"required,max=120"`
	Country     string `json:"country" validate:"max=120"`
	Region      string `json:"region" validate:"max=120"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

type CreatePropertyRequest struct {
	DestinationID int64    `json:"destination_id" binding:"required" validate:"required,gt=0"`
	Name          string   `json:"name" binding:"required" validate:"required,max=200"`
	Description   string   `json:"description"`
	PropertyType  string   `json:"property_type" validate:"omitempty,oneof=apartment house villa cabin hotel"`
	PricePerNight float64  `json:"price_per_night" binding:"required" validate:"required,gt=0"`
	MaxGuests     int      `json:"max_guests" binding:"required" validate:"required,gte=1,lte=50"`
	Bedrooms      int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int      `json:"bathrooms" validate:"gte=0"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
}

type UpdatePropertyRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=200"`
	Description   *string  `json:"description"`
	PropertyType  *string  `json:"property_type" validate:"omitempty,oneof=apartment house villa cabin hotel"`
	PricePerNight *float64 `json:"price_per_night" validate:"omitempty,gt=0"`
	MaxGuests     *int     `json:"max_guests" validate:"omitempty,gte=1,lte=50"`
	Bedrooms      *int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms     *int     `json:"bathrooms" validate:"omitempty,gte=0"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	IsAvailable   *bool    `json:"is_available"`
}
