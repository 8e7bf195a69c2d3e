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

var errDueBeforeCalibration = apperrors.NewHttpError(http.StatusBadRequest, "Ngày hiệu chuẩn tiếp theo phải sau ngày hiệu chuẩn", nil, nil)

type CalibrationService struct {
	repo   *repositories.Registry
	logger *zap.Logger
}

func NewCalibrationService(repo *repositories.Registry, logger *zap.Logger) *CalibrationService {
	return &CalibrationService{repo: repo, logger: logger}
}

func (s *CalibrationService) GetRecords(ctx context.Context) []entities.CalibrationRecord {
	return s.repo.Calibration.List(ctx)
}

func (s *CalibrationService) GetRecordsByAsset(ctx context.Context, assetID uint64) []entities.CalibrationRecord {
	return s.repo.Calibration.Where(ctx, func(c entities.CalibrationRecord) bool { return c.AssetID == assetID })
}

func (s *CalibrationService) FindRecord(ctx context.Context, id uint64) (*entities.CalibrationRecord, error) {
	rec, err := s.repo.Calibration.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *CalibrationService) CreateRecord(ctx context.Context, payload dto.CreateCalibrationDTO) (*entities.CalibrationRecord, error) {
	if _, err := s.repo.Assets.FindByID(ctx, payload.AssetID); err != nil {
		return nil, errAssetMissing
	}
	if payload.NextDueAt != nil && !payload.NextDueAt.After(payload.CalibratedAt) {
		return nil, errDueBeforeCalibration
	}

	now := time.Now()
	rec := entities.CalibrationRecord{
		AssetID:      payload.AssetID,
		CalibratedAt: payload.CalibratedAt,
		NextDueAt:    payload.NextDueAt,
		Result:       payload.Result,
		Certificate:  payload.Certificate,
		PerformedBy:  payload.PerformedBy,
	}
	rec.CreatedAt, rec.UpdatedAt = &now, &now

	created, err := s.repo.Calibration.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Поверка зарегистрирована", zap.Uint64("id", created.ID), zap.Uint64("asset_id", created.AssetID))
	return &created, nil
}

func (s *CalibrationService) UpdateRecord(ctx context.Context, id uint64, payload dto.UpdateCalibrationDTO) (*entities.CalibrationRecord, error) {
	updated, err := s.repo.Calibration.Update(ctx, id, func(c *entities.CalibrationRecord) error {
		utils.Patch(&c.CalibratedAt, payload.CalibratedAt)
		utils.PatchTime(&c.NextDueAt, payload.NextDueAt)
		utils.Patch(&c.Result, payload.Result)
		utils.Patch(&c.Certificate, payload.Certificate)
		utils.Patch(&c.PerformedBy, payload.PerformedBy)
		if c.NextDueAt != nil && !c.NextDueAt.After(c.CalibratedAt) {
			return errDueBeforeCalibration
		}
		c.UpdatedAt = utils.ToPtr(time.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *CalibrationService) DeleteRecord(ctx context.Context, id uint64, reason string) error {
	if err := s.repo.Calibration.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Поверка удалена", zap.Uint64("id", id), zap.String("reason", reason))
	return nil
}
