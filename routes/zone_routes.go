package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/controllers"
)

func SetupZoneRoutes(public, protected *gin.RouterGroup, zoneController *controllers.ZoneController) {
	public.GET("/zones", zoneController.GetAllZones)
	public.GET("/zones/:id", zoneController.GetZoneById)

	protected.POST("/zones", zoneController.CreateZone)
	protected.PUT("/zones/:id", zoneController.UpdateZone)
	protected.DELETE("/zones/:id", zoneController.DeleteZone)
}
