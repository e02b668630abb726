package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/controllers"
	"github.com/pawbridge/api-go/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every endpoint to one of three explicit tiers: public,
// protected (valid token) and admin. A route's tier is decided by the group
// it is registered in, never by registration order.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	reportController := controllers.NewReportController(db)
	adoptionController := controllers.NewAdoptionController(db)
	incidentController := controllers.NewIncidentController(db)
	feedLogController := controllers.NewFeedLogController(db)
	eventController := controllers.NewEventController(db)
	zoneController := controllers.NewZoneController(db)
	uploadController := controllers.NewUploadController()

	public := r.Group("/api")

	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(db))

	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(db), middleware.AdminOnly())

	// Auth & profile
	public.POST("/users/register", authController.Register)
	public.POST("/users/login", authController.Login)
	protected.GET("/users/profile", authController.GetProfile)
	protected.PUT("/users/profile", authController.UpdateProfile)

	// Photo uploads
	protected.POST("/uploads/photo", uploadController.GetPhotoUploadURL)

	// Admin user management
	admin.GET("/users", userController.GetAllUsers)
	admin.GET("/users/:id", userController.GetSingleUser)
	admin.PUT("/users/:id", userController.AdminUpdateUser)
	admin.DELETE("/users/:id", userController.DeleteUser)

	SetupReportRoutes(public, protected, admin, reportController)
	SetupAdoptionRoutes(public, protected, adoptionController)
	SetupIncidentRoutes(public, admin, incidentController, db)
	SetupFeedLogRoutes(public, protected, feedLogController)
	SetupEventRoutes(public, protected, eventController)
	SetupZoneRoutes(public, protected, zoneController)
}
