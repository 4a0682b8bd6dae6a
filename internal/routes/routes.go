package routes

import (
	"vaxtrack-server/internal/config"
	"vaxtrack-server/internal/handlers"
	"vaxtrack-server/internal/middleware"
	"vaxtrack-server/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	babyHandler := handlers.NewBabyHandler(db)
	doseHandler := handlers.NewDoseHandler(db)
	statsHandler := handlers.NewStatsHandler(db)
	outreachHandler := handlers.NewOutreachHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg)) // Apply JWT authentication middleware
	{
		// Auth related (e.g., profile, logout if it needs auth)
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// Staff account management
		userRoutes := private.Group("/users")
		{
			// Field staff listing for outreach assignment - accessible by all authenticated users
			userRoutes.GET("/field-staff", userHandler.GetFieldStaff)

			// Admin-only routes
			adminRoutes := userRoutes.Group("")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin)) // Only Admins
			{
				adminRoutes.POST("", userHandler.CreateUser)
				adminRoutes.GET("", userHandler.GetUsers)
				adminRoutes.GET("/:id", userHandler.GetUserByID)
				adminRoutes.PUT("/:id", userHandler.UpdateUser)
				adminRoutes.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		// Dashboard statistics
		private.GET("/stats", statsHandler.GetClinicStats)

		// Baby registry routes
		babyRoutes := private.Group("/babies")
		{
			// Any clinic staff can register a baby
			babyRoutes.POST("", babyHandler.RegisterBaby)

			// Dashboard list with filter/search, and per-baby detail
			babyRoutes.GET("", babyHandler.ListBabies)
			babyRoutes.GET("/:id", babyHandler.GetBabyByID)

			// Growth chart entries
			babyRoutes.POST("/:id/weights", babyHandler.AddGrowthPoint)

			// Recording a dose outcome needs clinical write permission
			babyRoutes.PATCH("/:id/doses/:doseId",
				middleware.RoleAuthMiddleware(models.RoleNurse, models.RoleAdmin),
				doseHandler.RecordDoseOutcome)
		}

		// Outreach routes
		outreachRoutes := private.Group("/outreach")
		{
			outreachRoutes.GET("/targets", outreachHandler.GetOutreachTargets)
			outreachRoutes.POST("", outreachHandler.CreateOutreachVisit)
			outreachRoutes.GET("", outreachHandler.GetOutreachVisits)
			outreachRoutes.PATCH("/:id/status", outreachHandler.UpdateOutreachVisitStatus)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
