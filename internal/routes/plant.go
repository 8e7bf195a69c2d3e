package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runPlantRouter(secure *echo.Group, ctrl *controllers.PlantController) {
	secure.GET("/plants", ctrl.GetPlants)
	secure.GET("/plants/:id", ctrl.FindPlant)
	secure.POST("/plants", ctrl.CreatePlant)
	secure.PUT("/plants/:id", ctrl.UpdatePlant)
	secure.DELETE("/plants/:id", ctrl.DeletePlant)
}
