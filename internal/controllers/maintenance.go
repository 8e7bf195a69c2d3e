package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/services"
	"asset-system/pkg/api"
	"asset-system/pkg/constants"
)

type MaintenanceController struct {
	maintenanceService *services.MaintenanceService
	logger             *zap.Logger
}

func NewMaintenanceController(maintenanceService *services.MaintenanceService, logger *zap.Logger) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService, logger: logger}
}

func (c *MaintenanceController) GetRecords(ctx echo.Context) error {
	return api.SuccessList(ctx, "", c.maintenanceService.GetRecords(ctx.Request().Context()))
}

func (c *MaintenanceController) GetRecordsByStatus(ctx echo.Context) error {
	status := constants.MaintenanceStatus(ctx.Param("status"))
	return api.SuccessList(ctx, "", c.maintenanceService.GetRecordsByStatus(ctx.Request().Context(), status))
}

func (c *MaintenanceController) GetRecordsByAsset(ctx echo.Context) error {
	assetID, err := parseID(ctx, "ID thiết bị không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "", c.maintenanceService.GetRecordsByAsset(ctx.Request().Context(), assetID))
}

func (c *MaintenanceController) FindRecord(ctx echo.Context) error {
	id, err := parseID(ctx, "ID bảo trì không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.maintenanceService.FindRecord(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "", res)
}

func (c *MaintenanceController) CreateRecord(ctx echo.Context) error {
	var payload dto.CreateMaintenanceDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.maintenanceService.CreateRecord(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("Ошибка при создании заявки на обслуживание", zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, "Đã tạo yêu cầu bảo trì", res)
}

func (c *MaintenanceController) UpdateRecord(ctx echo.Context) error {
	id, err := parseID(ctx, "ID bảo trì không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateMaintenanceDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.maintenanceService.UpdateRecord(ctx.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "Đã cập nhật bảo trì", res)
}

func (c *MaintenanceController) ApproveRecord(ctx echo.Context) error {
	id, err := parseID(ctx, "ID bảo trì không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.maintenanceService.ApproveRecord(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "Đã phê duyệt yêu cầu bảo trì", res)
}

func (c *MaintenanceController) DeleteRecord(ctx echo.Context) error {
	id, err := parseID(ctx, "ID bảo trì không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	reason, err := deleteReason(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.maintenanceService.DeleteRecord(ctx.Request().Context(), id, reason); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return deleted(ctx, "Đã xóa yêu cầu bảo trì")
}
