package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/services"
	"asset-system/pkg/api"
)

type CalibrationController struct {
	calibrationService *services.CalibrationService
	logger             *zap.Logger
}

func NewCalibrationController(calibrationService *services.CalibrationService, logger *zap.Logger) *CalibrationController {
	return &CalibrationController{calibrationService: calibrationService, logger: logger}
}

func (c *CalibrationController) GetRecords(ctx echo.Context) error {
	return api.SuccessList(ctx, "", c.calibrationService.GetRecords(ctx.Request().Context()))
}

func (c *CalibrationController) GetRecordsByAsset(ctx echo.Context) error {
	assetID, err := parseID(ctx, "ID thiết bị không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "", c.calibrationService.GetRecordsByAsset(ctx.Request().Context(), assetID))
}

func (c *CalibrationController) FindRecord(ctx echo.Context) error {
	id, err := parseID(ctx, "ID hiệu chuẩn không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.calibrationService.FindRecord(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "", res)
}

func (c *CalibrationController) CreateRecord(ctx echo.Context) error {
	var payload dto.CreateCalibrationDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.calibrationService.CreateRecord(ctx.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, "Đã ghi nhận hiệu chuẩn", res)
}

func (c *CalibrationController) UpdateRecord(ctx echo.Context) error {
	id, err := parseID(ctx, "ID hiệu chuẩn không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateCalibrationDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.calibrationService.UpdateRecord(ctx.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "Đã cập nhật hiệu chuẩn", res)
}

func (c *CalibrationController) DeleteRecord(ctx echo.Context) error {
	id, err := parseID(ctx, "ID hiệu chuẩn không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	reason, err := deleteReason(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.calibrationService.DeleteRecord(ctx.Request().Context(), id, reason); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return deleted(ctx, "Đã xóa bản ghi hiệu chuẩn")
}
