package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentease/internal/config"
	"rentease/internal/gateway"
	"rentease/internal/infrastructure/database/postgres"
	"rentease/internal/logger"
	"rentease/internal/middleware"
	"rentease/internal/notification"
	"rentease/internal/transport/http/handler"
	"rentease/internal/usecase/address"
	"rentease/internal/usecase/admin"
	"rentease/internal/usecase/delivery"
	"rentease/internal/usecase/listing"
	"rentease/internal/usecase/refund"
	"rentease/internal/usecase/reservation"
	"rentease/internal/usecase/user"
)

// Deps are the externally-constructed collaborators the router wires into the
// services.
type Deps struct {
	Gateway gateway.Gateway
	Mailer  notification.Sender
	Events  notification.EventPublisher
}

func SetupRoutes(cfg *config.Config, db *postgres.DB, deps Deps) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	profileRepository := postgres.NewCourierProfileRepository(db)
	codeRepository := postgres.NewVerificationCodeRepository(db)
	addressRepository := postgres.NewAddressRepository(db)
	listingRepository := postgres.NewListingRepository(db)
	reservationRepository := postgres.NewReservationRepository(db)
	deliveryRepository := postgres.NewDeliveryRepository(db)

	userService := user.NewService(userRepository, profileRepository, codeRepository, deps.Mailer, cfg)
	addressService := address.NewService(addressRepository)
	listingService := listing.NewService(listingRepository)
	reservationService := reservation.NewService(reservationRepository, deliveryRepository, listingRepository, addressRepository, deps.Gateway, cfg)
	deliveryService := delivery.NewService(deliveryRepository, reservationRepository, addressRepository, userRepository, profileRepository, listingRepository, deps.Mailer, deps.Events)
	refundService := refund.NewService(reservationRepository, deliveryRepository, userRepository, deps.Gateway, deps.Mailer)
	adminService := admin.NewService(deliveryRepository, reservationRepository, userRepository, listingRepository)

	userHandler := handler.NewUserHandler(userService)
	addressHandler := handler.NewAddressHandler(addressService)
	listingHandler := handler.NewListingHandler(listingService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)
	refundHandler := handler.NewRefundHandler(refundService)
	adminHandler := handler.NewAdminHandler(adminService)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterPublicRoutes(v1)
		listingHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterRoutes(protected)
			addressHandler.RegisterRoutes(protected)
			listingHandler.RegisterRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			deliveryHandler.RegisterRoutes(protected)
			refundHandler.RegisterRoutes(protected)

			courier := protected.Group("")
			courier.Use(middleware.CourierOnly())
			{
				deliveryHandler.RegisterCourierRoutes(courier)
				userHandler.RegisterCourierRoutes(courier)
			}

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				deliveryHandler.RegisterAdminRoutes(adminGroup)
				refundHandler.RegisterAdminRoutes(adminGroup)
				adminHandler.RegisterAdminRoutes(adminGroup)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
