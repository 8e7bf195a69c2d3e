package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runAssetRouter(secure *echo.Group, ctrl *controllers.AssetController) {
	secure.GET("/assets", ctrl.GetAssets)
	secure.GET("/assets/by-plant/:id", ctrl.GetAssetsByPlant)
	secure.GET("/assets/by-status/:status", ctrl.GetAssetsByStatus)
	secure.GET("/assets/:id", ctrl.FindAsset)
	secure.POST("/assets", ctrl.CreateAsset)
	secure.PUT("/assets/:id", ctrl.UpdateAsset)
	secure.DELETE("/assets/:id", ctrl.DeleteAsset)
}
