package services

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/pkg/constants"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/utils"
)

var (
	errAssetCodeTaken = apperrors.NewHttpError(http.StatusConflict, "Mã thiết bị đã tồn tại", nil, nil)
	errPlantMissing   = apperrors.NewHttpError(http.StatusBadRequest, "Nhà máy không tồn tại", nil, nil)
)

type AssetService struct {
	repo   *repositories.Registry
	logger *zap.Logger
}

func NewAssetService(repo *repositories.Registry, logger *zap.Logger) *AssetService {
	return &AssetService{repo: repo, logger: logger}
}

func (s *AssetService) GetAssets(ctx context.Context) []entities.Asset {
	return s.repo.Assets.List(ctx)
}

func (s *AssetService) GetAssetsByPlant(ctx context.Context, plantID uint64) []entities.Asset {
	return s.repo.Assets.Where(ctx, func(a entities.Asset) bool { return a.PlantID == plantID })
}

func (s *AssetService) GetAssetsByStatus(ctx context.Context, status constants.AssetStatus) []entities.Asset {
	return s.repo.Assets.Where(ctx, func(a entities.Asset) bool { return a.Status == status })
}

func (s *AssetService) FindAsset(ctx context.Context, id uint64) (*entities.Asset, error) {
	asset, err := s.repo.Assets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (s *AssetService) codeTaken(ctx context.Context, code string, exceptID uint64) bool {
	_, err := s.repo.Assets.FindOne(ctx, func(a entities.Asset) bool { return a.Code == code && a.ID != exceptID })
	return err == nil
}

func (s *AssetService) plantExists(ctx context.Context, id uint64) bool {
	_, err := s.repo.Plants.FindByID(ctx, id)
	return err == nil
}

func (s *AssetService) CreateAsset(ctx context.Context, payload dto.CreateAssetDTO) (*entities.Asset, error) {
	if s.codeTaken(ctx, payload.Code, 0) {
		return nil, errAssetCodeTaken
	}
	if !s.plantExists(ctx, payload.PlantID) {
		return nil, errPlantMissing
	}

	status := payload.Status
	if status == "" {
		status = constants.AssetStatusActive
	}

	now := time.Now()
	asset := entities.Asset{
		Code:         payload.Code,
		Name:         payload.Name,
		PlantID:      payload.PlantID,
		Department:   payload.Department,
		Model:        payload.Model,
		SerialNumber: payload.SerialNumber,
		Manufacturer: payload.Manufacturer,
		Status:       status,
		InstalledAt:  payload.InstalledAt,
	}
	asset.CreatedAt, asset.UpdatedAt = &now, &now

	created, err := s.repo.Assets.Create(ctx, asset)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Оборудование создано", zap.Uint64("id", created.ID), zap.String("code", created.Code))
	return &created, nil
}

func (s *AssetService) UpdateAsset(ctx context.Context, id uint64, payload dto.UpdateAssetDTO) (*entities.Asset, error) {
	if payload.Code != nil && s.codeTaken(ctx, *payload.Code, id) {
		return nil, errAssetCodeTaken
	}
	if payload.PlantID != nil && !s.plantExists(ctx, *payload.PlantID) {
		return nil, errPlantMissing
	}

	updated, err := s.repo.Assets.Update(ctx, id, func(a *entities.Asset) error {
		utils.Patch(&a.Code, payload.Code)
		utils.Patch(&a.Name, payload.Name)
		utils.Patch(&a.PlantID, payload.PlantID)
		utils.Patch(&a.Department, payload.Department)
		utils.Patch(&a.Model, payload.Model)
		utils.Patch(&a.SerialNumber, payload.SerialNumber)
		utils.Patch(&a.Manufacturer, payload.Manufacturer)
		if utils.Patch(&a.Status, payload.Status) {
			s.logger.Info("Статус оборудования изменён", zap.Uint64("id", id), zap.String("status", string(a.Status)))
		}
		utils.PatchTime(&a.InstalledAt, payload.InstalledAt)
		a.UpdatedAt = utils.ToPtr(time.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAsset удаляет оборудование вместе с его историей обслуживания и поверок.
func (s *AssetService) DeleteAsset(ctx context.Context, id uint64, reason string) error {
	if err := s.repo.Assets.Delete(ctx, id); err != nil {
		return err
	}
	for _, m := range s.repo.Maintenance.Where(ctx, func(m entities.MaintenanceRecord) bool { return m.AssetID == id }) {
		_ = s.repo.Maintenance.Delete(ctx, m.ID)
	}
	for _, c := range s.repo.Calibration.Where(ctx, func(c entities.CalibrationRecord) bool { return c.AssetID == id }) {
		_ = s.repo.Calibration.Delete(ctx, c.ID)
	}
	s.logger.Info("Оборудование удалено", zap.Uint64("id", id), zap.String("reason", reason))
	return nil
}
