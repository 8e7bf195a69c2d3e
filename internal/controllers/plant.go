package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/services"
	"asset-system/pkg/api"
)

type PlantController struct {
	plantService *services.PlantService
	logger       *zap.Logger
}

func NewPlantController(plantService *services.PlantService, logger *zap.Logger) *PlantController {
	return &PlantController{plantService: plantService, logger: logger}
}

func (c *PlantController) GetPlants(ctx echo.Context) error {
	return api.SuccessList(ctx, "", c.plantService.GetPlants(ctx.Request().Context()))
}

func (c *PlantController) FindPlant(ctx echo.Context) error {
	id, err := parseID(ctx, "ID nhà máy không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.plantService.FindPlant(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "", res)
}

func (c *PlantController) CreatePlant(ctx echo.Context) error {
	var payload dto.CreatePlantDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.plantService.CreatePlant(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("Ошибка при создании завода", zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusCreated, "Đã tạo nhà máy", res)
}

func (c *PlantController) UpdatePlant(ctx echo.Context) error {
	id, err := parseID(ctx, "ID nhà máy không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdatePlantDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.plantService.UpdatePlant(ctx.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Success(ctx, http.StatusOK, "Đã cập nhật nhà máy", res)
}

func (c *PlantController) DeletePlant(ctx echo.Context) error {
	id, err := parseID(ctx, "ID nhà máy không hợp lệ")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	reason, err := deleteReason(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.plantService.DeletePlant(ctx.Request().Context(), id, reason); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return deleted(ctx, "Đã xóa nhà máy")
}
