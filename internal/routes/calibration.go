package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runCalibrationRouter(secure *echo.Group, ctrl *controllers.CalibrationController) {
	secure.GET("/calibration", ctrl.GetRecords)
	secure.GET("/calibration/by-asset/:id", ctrl.GetRecordsByAsset)
	secure.GET("/calibration/:id", ctrl.FindRecord)
	secure.POST("/calibration", ctrl.CreateRecord)
	secure.PUT("/calibration/:id", ctrl.UpdateRecord)
	secure.DELETE("/calibration/:id", ctrl.DeleteRecord)
}
