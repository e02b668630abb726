package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/controllers"
	"github.com/pawbridge/api-go/middleware"
	"gorm.io/gorm"
)

func SetupIncidentRoutes(public, admin *gin.RouterGroup, incidentController *controllers.IncidentController, db *gorm.DB) {
	public.GET("/incidents", incidentController.GetAllIncidents)
	public.GET("/incidents/:id", incidentController.GetIncidentById)

	// Anonymous reporting is allowed; a logged-in caller is recorded as poster
	public.POST("/incidents", middleware.OptionalAuth(db), incidentController.CreateIncident)

	// The only mutation paths for incidents
	admin.PUT("/incidents/:id", incidentController.AdminUpdateIncident)
	admin.DELETE("/incidents/:id", incidentController.DeleteIncident)
}
