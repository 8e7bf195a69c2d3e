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

type AssetController struct {
	assetService *services.AssetService
	logger       *zap.Logger
}

func NewAssetController(assetService *services.AssetService, logger *zap.Logger) *AssetController {
	return &AssetController{assetService: assetService, logger: logger}
}

func (c *AssetController) GetAssets(ctx echo.Context) error {
	return api.SuccessList(ctx, "", c.assetService.GetAssets(ctx.Request().Context()))
}

func (c *AssetController) GetAssetsByPlant(ctx echo.Context) error {
	plantID, err := parseID(ctx, "ID nhà máy không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "", c.assetService.GetAssetsByPlant(ctx.Request().Context(), plantID))
}

func (c *AssetController) GetAssetsByStatus(ctx echo.Context) error {
	status := constants.AssetStatus(ctx.Param("status"))
	return api.SuccessList(ctx, "", c.assetService.GetAssetsByStatus(ctx.Request().Context(), status))
}

func (c *AssetController) FindAsset(ctx echo.Context) error {
	id, err := parseID(ctx, "ID thiết bị không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.assetService.FindAsset(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "", res)
}

func (c *AssetController) CreateAsset(ctx echo.Context) error {
	var payload dto.CreateAssetDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.assetService.CreateAsset(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("Ошибка при создании оборудования", zap.Error(err), zap.String("code", payload.Code))
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, "Đã tạo thiết bị", res)
}

func (c *AssetController) UpdateAsset(ctx echo.Context) error {
	id, err := parseID(ctx, "ID thiết bị không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateAssetDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.assetService.UpdateAsset(ctx.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "Đã cập nhật thiết bị", res)
}

func (c *AssetController) DeleteAsset(ctx echo.Context) error {
	id, err := parseID(ctx, "ID thiết bị không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	reason, err := deleteReason(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.assetService.DeleteAsset(ctx.Request().Context(), id, reason); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return deleted(ctx, "Đã xóa thiết bị")
}
