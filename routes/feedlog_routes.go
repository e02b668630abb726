package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/controllers"
)

func SetupFeedLogRoutes(public, protected *gin.RouterGroup, feedLogController *controllers.FeedLogController) {
	public.GET("/feed-logs", feedLogController.GetAllFeedLogs)

	protected.POST("/feed-logs", feedLogController.CreateFeedLog)
	protected.DELETE("/feed-logs/:id", feedLogController.DeleteFeedLog)
}
