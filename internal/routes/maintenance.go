package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/authz"
	"asset-system/internal/controllers"
	"asset-system/pkg/middleware"
)

func runMaintenanceRouter(secure *echo.Group, ctrl *controllers.MaintenanceController, authMW *middleware.AuthMiddleware) {
	secure.GET("/maintenance", ctrl.GetRecords)
	secure.GET("/maintenance/by-status/:status", ctrl.GetRecordsByStatus)
	secure.GET("/maintenance/by-asset/:id", ctrl.GetRecordsByAsset)
	secure.GET("/maintenance/:id", ctrl.FindRecord)
	secure.POST("/maintenance", ctrl.CreateRecord, authMW.Require(authz.MaintenanceCreate))
	secure.PUT("/maintenance/:id", ctrl.UpdateRecord)
	secure.PATCH("/maintenance/:id/approve", ctrl.ApproveRecord, authMW.Require(authz.MaintenanceApprove))
	secure.DELETE("/maintenance/:id", ctrl.DeleteRecord)
}
