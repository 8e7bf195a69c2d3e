package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/controllers"
	"asset-system/internal/repositories"
	"asset-system/internal/services"
	"asset-system/pkg/middleware"
	"asset-system/pkg/service"
)

// InitRouter регистрирует все маршруты под /api.
func InitRouter(e *echo.Echo, repo *repositories.Registry, jwtSvc service.JWTService, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")

	// --- 1. СЕРВИСЫ ---
	authService := services.NewAuthService(repo.Users, jwtSvc, logger.Named("auth"))
	plantService := services.NewPlantService(repo, logger.Named("plants"))
	assetService := services.NewAssetService(repo, logger.Named("assets"))
	maintenanceService := services.NewMaintenanceService(repo, logger.Named("maintenance"))
	calibrationService := services.NewCalibrationService(repo, logger.Named("calibration"))

	authMW := middleware.NewAuthMiddleware(jwtSvc, authService, logger.Named("auth_mw"))

	// --- 2. РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, controllers.NewAuthController(authService, logger))
	runPlantRouter(secureGroup, controllers.NewPlantController(plantService, logger))
	runAssetRouter(secureGroup, controllers.NewAssetController(assetService, logger))
	runMaintenanceRouter(secureGroup, controllers.NewMaintenanceController(maintenanceService, logger), authMW)
	runCalibrationRouter(secureGroup, controllers.NewCalibrationController(calibrationService, logger))

	logger.Info("InitRouter: Создание маршрутов завершено")
}
