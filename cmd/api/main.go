package main

import (
	"log"
	"os"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/database"
	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
	"github.com/RamadhaniRO/voya-travel-platform/internal/middleware"
	"github.com/RamadhaniRO/voya-travel-platform/internal/modules/analytics"
	"github.com/RamadhaniRO/voya-travel-platform/internal/modules/auth"
	"github.com/RamadhaniRO/voya-travel-platform/internal/modules/booking"
	"github.com/RamadhaniRO/voya-travel-platform/internal/modules/catalog"
	"github.com/RamadhaniRO/voya-travel-platform/internal/modules/mailer"
	"github.com/RamadhaniRO/voya-travel-platform/internal/modules/notification"
	"github.com/RamadhaniRO/voya-travel-platform/internal/modules/payment"
	"github.com/RamadhaniRO/voya-travel-platform/internal/modules/review"
	jwtsvc "github.com/RamadhaniRO/voya-travel-platform/internal/pkg/jwt"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "voya.db"
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
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

	jwtService := jwtsvc.New(jwtSecret, 24*time.Hour)

	userRepo := repository.NewUserRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	emailRepo := repository.NewEmailRepository(db)

	hub := notification.NewHub()
	defer hub.Close()

	notificationService := notification.NewService(notificationRepo, hub)
	mailService := mailer.NewService(emailRepo, mailer.LogProvider{})
	paymentService := payment.NewService(paymentRepo, payment.NewStubGateway())
	authService := auth.NewService(userRepo, jwtService)
	catalogService := catalog.NewService(destinationRepo, propertyRepo)
	bookingController := booking.NewController(
		bookingRepo, propertyRepo, paymentService, mailService, notificationService, log.Printf)
	bookingService := booking.NewService(bookingRepo, propertyRepo, notificationService)
	reviewService := review.NewService(reviewRepo, bookingRepo)
	analyticsService := analytics.NewService(analyticsRepo)

	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorLogger())

	api := router.Group("/api/v1")
	protected := router.Group("/api/v1", middleware.JWTAuth(jwtService))

	auth.NewHandler(authService, jwtService).RegisterRoutes(api, protected)
	catalog.NewHandler(catalogService).RegisterRoutes(api, protected)
	booking.NewHandler(bookingController, bookingService).RegisterRoutes(protected)
	payment.NewHandler(paymentService).RegisterRoutes(protected)
	notification.NewHandler(notificationService, hub).RegisterRoutes(protected)
	review.NewHandler(reviewService).RegisterRoutes(api, protected)
	analytics.NewHandler(analyticsService).RegisterRoutes(api, protected)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
