package router

import (
	"github.com/gin-gonic/gin"
	"github.com/platewise/platewise-backend/config"
	"github.com/platewise/platewise-backend/internal/app/controller"
	"github.com/platewise/platewise-backend/internal/middleware"
)

type Router struct {
	authController         *controller.AuthController
	registrationController *controller.RegistrationController
	adminController        *controller.AdminController
	subscriptionController *controller.SubscriptionController
	restaurantController   *controller.RestaurantController
	uploadController       *controller.UploadController
	authMiddleware         *middleware.AuthMiddleware
	subscriptionMiddleware *middleware.SubscriptionMiddleware
	config                 *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	registrationController *controller.RegistrationController,
	adminController *controller.AdminController,
	subscriptionController *controller.SubscriptionController,
	restaurantController *controller.RestaurantController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	subscriptionMiddleware *middleware.SubscriptionMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:         authController,
		registrationController: registrationController,
		adminController:        adminController,
		subscriptionController: subscriptionController,
		restaurantController:   restaurantController,
		uploadController:       uploadController,
		authMiddleware:         authMiddleware,
		subscriptionMiddleware: subscriptionMiddleware,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "PLATEWISE API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
		}

		registrations := v1.Group("/registrations")
		registrations.Use(r.authMiddleware.Authenticate())
		{
			registrations.POST("", r.registrationController.Submit)
			registrations.GET("/status", r.registrationController.GetStatus)
		}

		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.Authenticate())
		admin.Use(r.authMiddleware.RequireRole("admin"))
		{
			admin.GET("/registrations", r.adminController.ListRegistrations)
			admin.POST("/registrations/:id/approve", r.adminController.Approve)
			admin.POST("/registrations/:id/reject", r.adminController.Reject)
		}

		// Plan catalog is public; purchasing needs an owner account
		v1.GET("/packages", r.subscriptionController.ListPackages)

		subscriptions := v1.Group("/subscriptions")
		subscriptions.Use(r.authMiddleware.Authenticate())
		subscriptions.Use(r.authMiddleware.RequireRole("owner", "admin"))
		{
			subscriptions.GET("", r.subscriptionController.ListMine)
			subscriptions.POST("", r.subscriptionController.Purchase)
		}

		restaurants := v1.Group("/restaurants")
		restaurants.Use(r.authMiddleware.Authenticate())
		restaurants.Use(r.authMiddleware.RequireRole("owner", "admin"))
		restaurants.Use(r.subscriptionMiddleware.RequireActiveSubscription())
		{
			restaurants.GET("/me", r.restaurantController.GetMine)
			restaurants.PUT("/me", r.restaurantController.UpdateMine)
		}

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate())
		{
			upload.POST("/license-url", r.uploadController.GenerateLicenseUploadURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
