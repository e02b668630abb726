package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/controllers"
)

func SetupEventRoutes(public, protected *gin.RouterGroup, eventController *controllers.EventController) {
	public.GET("/events", eventController.GetAllEvents)
	public.GET("/events/:id", eventController.GetEventById)

	protected.POST("/events", eventController.CreateEvent)
	protected.PUT("/events/:id", eventController.UpdateEvent)
	protected.DELETE("/events/:id", eventController.DeleteEvent)
}
