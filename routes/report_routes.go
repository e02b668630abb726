package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/controllers"
)

func SetupReportRoutes(public, protected, admin *gin.RouterGroup, reportController *controllers.ReportController) {
	public.GET("/reports", reportController.GetAllReports)
	public.GET("/reports/:id", reportController.GetReportById)

	// Anonymous citizen submissions with server-forced defaults
	public.POST("/citizen/reports", reportController.CreateCitizenReport)

	protected.POST("/reports", reportController.CreateReport)
	protected.PUT("/reports/:id", reportController.UpdateReport)
	protected.DELETE("/reports/:id", reportController.DeleteReport)

	// Status and assignment live behind the admin tier only
	admin.PUT("/reports/:id", reportController.AdminUpdateReport)
}
