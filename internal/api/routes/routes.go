package routes

import (
	"time"

	"shiftboard-backend/internal/api/handlers"
	"shiftboard-backend/internal/api/middleware"
	"shiftboard-backend/internal/auth"
	"shiftboard-backend/internal/config"
	"shiftboard-backend/internal/repository"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	timeEntryRepo := repository.NewTimeEntryRepository(db)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, userRepo, validator)
	userService := service.NewUserService(userRepo, validator)
	shiftService := service.NewShiftService(shiftRepo, userRepo, validator)
	timeEntryService := service.NewTimeEntryService(timeEntryRepo, shiftRepo, validator)

	// Initialize auth services
	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
	authService := auth.NewAuthService(cfg.JWTSecret, tokenTTL, userRepo)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	companyHandler := handlers.NewCompanyHandler(companyService)
	userHandler := handlers.NewUserHandler(userService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	timeEntryHandler := handlers.NewTimeEntryHandler(timeEntryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	router.POST("/api/companies/register", companyHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Company routes
		company := v1.Group("/company")
		{
			company.GET("", companyHandler.GetCompany)
			company.PUT("", companyHandler.UpdateCompany)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Shift routes
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.POST("", shiftHandler.CreateShift)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.PUT("/:id", shiftHandler.UpdateShift)
			shifts.DELETE("/:id", shiftHandler.DeleteShift)
		}

		// Time entry routes
		timeEntries := v1.Group("/time-entries")
		{
			timeEntries.GET("", timeEntryHandler.ListTimeEntries)
			timeEntries.POST("", timeEntryHandler.Clock)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
