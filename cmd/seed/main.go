package main

import (
	"context"
	"log"
	"os"

	"github.com/RamadhaniRO/voya-travel-platform/internal/database"
	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database with demo users, destinations and listings.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "voya.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Destination{},
		&domain.Property{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.Notification{},
		&domain.Review{},
		&domain.AnalyticsEvent{},
		&domain.EmailNotification{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	destinations := repository.NewDestinationRepository(db)
	properties := repository.NewPropertyRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}

	host := &domain.User{
		Email:        "host@voya.dev",
		PasswordHash: string(hash),
		FirstName:    "Hanna",
		LastName:     "Berg",
		Role:         domain.RoleHost,
	}
	traveler := &domain.User{
		Email:        "traveler@voya.dev",
		PasswordHash: string(hash),
		FirstName:    "Tom",
		LastName:     "Reed",
		Role:         domain.RoleTraveler,
	}
	admin := &domain.User{
		Email:        "admin@voya.dev",
		PasswordHash: string(hash),
		FirstName:    "Ada",
		LastName:     "Admin",
		Role:         domain.RoleAdmin,
	}
	for _, u := range []*domain.User{host, traveler, admin} {
		if err := users.Create(ctx, u); err != nil {
			log.Printf("skipping user %s: %v", u.Email, err)
		}
	}

	seedDestinations := []*domain.Destination{
		{Name: "Lisbon", Country: "Portugal", Region: "Lisboa", Description: "Hills, trams and pastel de nata."},
		{Name: "Kyoto", Country: "Japan", Region: "Kansai", Description: "Temples, gardens and quiet streets."},
		{Name: "Zanzibar", Country: "Tanzania", Region: "Unguja", Description: "Spice markets and white sand."},
	}
	for _, d := range seedDestinations {
		if err := destinations.Create(ctx, d); err != nil {
			log.Printf("skipping destination %s: %v", d.Name, err)
		}
	}

	seedProperties := []*domain.Property{
		{
			HostID:        host.ID,
			DestinationID: seedDestinations[0].ID,
			Name:          "Alfama Rooftop Flat",
			Description:   "Two-bedroom flat with a river view.",
			PropertyType:  "apartment",
			PricePerNight: 120,
			MaxGuests:     4,
			Bedrooms:      2,
			Bathrooms:     1,
			Amenities:     []string{"wifi", "kitchen", "washer"},
			IsAvailable:   true,
		},
		{
			HostID:        host.ID,
			DestinationID: seedDestinations[1].ID,
			Name:          "Machiya Townhouse",
			Description:   "Restored wooden townhouse near Gion.",
			PropertyType:  "house",
			PricePerNight: 210,
			MaxGuests:     6,
			Bedrooms:      3,
			Bathrooms:     2,
			Amenities:     []string{"wifi", "garden", "tatami"},
			IsAvailable:   true,
		},
		{
			HostID:        host.ID,
			DestinationID: seedDestinations[2].ID,
			Name:          "Nungwi Beach Villa",
			Description:   "Villa on the beach, breakfast included.",
			PropertyType:  "villa",
			PricePerNight: 340,
			MaxGuests:     8,
			Bedrooms:      4,
			Bathrooms:     3,
			Amenities:     []string{"wifi", "pool", "beachfront"},
			IsAvailable:   true,
		},
	}
	for _, p := range seedProperties {
		if err := properties.Create(ctx, p); err != nil {
			log.Printf("skipping property %s: %v", p.Name, err)
		}
	}

	log.Println("seed complete")
}
