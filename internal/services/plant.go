package services

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/utils"
)

type PlantService struct {
	repo   *repositories.Registry
	logger *zap.Logger
}

func NewPlantService(repo *repositories.Registry, logger *zap.Logger) *PlantService {
	return &PlantService{repo: repo, logger: logger}
}

func (s *PlantService) GetPlants(ctx context.Context) []entities.Plant {
	return s.repo.Plants.List(ctx)
}

func (s *PlantService) FindPlant(ctx context.Context, id uint64) (*entities.Plant, error) {
	plant, err := s.repo.Plants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

func (s *PlantService) codeTaken(ctx context.Context, code string, exceptID uint64) bool {
	_, err := s.repo.Plants.FindOne(ctx, func(p entities.Plant) bool { return p.Code == code && p.ID != exceptID })
	return err == nil
}

func (s *PlantService) CreatePlant(ctx context.Context, payload dto.CreatePlantDTO) (*entities.Plant, error) {
	if s.codeTaken(ctx, payload.Code, 0) {
		return nil, apperrors.NewHttpError(http.StatusConflict, "Mã nhà máy đã tồn tại", nil, nil)
	}

	now := time.Now()
	plant := entities.Plant{Code: payload.Code, Name: payload.Name, Location: payload.Location}
	plant.CreatedAt, plant.UpdatedAt = &now, &now

	created, err := s.repo.Plants.Create(ctx, plant)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Завод создан", zap.Uint64("id", created.ID), zap.String("code", created.Code))
	return &created, nil
}

func (s *PlantService) UpdatePlant(ctx context.Context, id uint64, payload dto.UpdatePlantDTO) (*entities.Plant, error) {
	if payload.Code != nil && s.codeTaken(ctx, *payload.Code, id) {
		return nil, apperrors.NewHttpError(http.StatusConflict, "Mã nhà máy đã tồn tại", nil, nil)
	}

	updated, err := s.repo.Plants.Update(ctx, id, func(p *entities.Plant) error {
		utils.Patch(&p.Code, payload.Code)
		utils.Patch(&p.Name, payload.Name)
		utils.Patch(&p.Location, payload.Location)
		p.UpdatedAt = utils.ToPtr(time.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePlant - завод с оборудованием удалить нельзя.
func (s *PlantService) DeletePlant(ctx context.Context, id uint64, reason string) error {
	inUse := s.repo.Assets.Where(ctx, func(a entities.Asset) bool { return a.PlantID == id })
	if len(inUse) > 0 {
		return apperrors.NewHttpError(http.StatusConflict, "Nhà máy vẫn còn thiết bị, không thể xóa", nil,
			map[string]interface{}{"plant_id": id, "assets": len(inUse)})
	}
	if err := s.repo.Plants.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Завод удалён", zap.Uint64("id", id), zap.String("reason", reason))
	return nil
}
