package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pawbridge/api-go/controllers"
)

func SetupAdoptionRoutes(public, protected *gin.RouterGroup, adoptionController *controllers.AdoptionController) {
	public.GET("/adoptions", adoptionController.GetAllAdoptions)
	public.GET("/adoptions/:id", adoptionController.GetAdoptionById)

	protected.POST("/adoptions", adoptionController.CreateAdoption)
	protected.PUT("/adoptions/:id", adoptionController.UpdateAdoption)
	protected.DELETE("/adoptions/:id", adoptionController.DeleteAdoption)
}
