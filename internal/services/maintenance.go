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

var errAssetMissing = apperrors.NewHttpError(http.StatusBadRequest, "Thiết bị không tồn tại", nil, nil)

type MaintenanceService struct {
	repo   *repositories.Registry
	logger *zap.Logger
}

func NewMaintenanceService(repo *repositories.Registry, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{repo: repo, logger: logger}
}

func (s *MaintenanceService) GetRecords(ctx context.Context) []entities.MaintenanceRecord {
	return s.repo.Maintenance.List(ctx)
}

func (s *MaintenanceService) GetRecordsByStatus(ctx context.Context, status constants.MaintenanceStatus) []entities.MaintenanceRecord {
	return s.repo.Maintenance.Where(ctx, func(m entities.MaintenanceRecord) bool { return m.Status == status })
}

func (s *MaintenanceService) GetRecordsByAsset(ctx context.Context, assetID uint64) []entities.MaintenanceRecord {
	return s.repo.Maintenance.Where(ctx, func(m entities.MaintenanceRecord) bool { return m.AssetID == assetID })
}

func (s *MaintenanceService) FindRecord(ctx context.Context, id uint64) (*entities.MaintenanceRecord, error) {
	rec, err := s.repo.Maintenance.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateRecord - новая заявка всегда в статусе pending, автор - текущий пользователь.
func (s *MaintenanceService) CreateRecord(ctx context.Context, payload dto.CreateMaintenanceDTO) (*entities.MaintenanceRecord, error) {
	actor, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Assets.FindByID(ctx, payload.AssetID); err != nil {
		return nil, errAssetMissing
	}

	now := time.Now()
	rec := entities.MaintenanceRecord{
		AssetID:     payload.AssetID,
		Type:        payload.Type,
		Status:      constants.MaintenanceStatusPending,
		Description: payload.Description,
		Interval:    payload.Interval,
		ScheduledAt: payload.ScheduledAt,
		RequestedBy: actor.ID,
	}
	rec.CreatedAt, rec.UpdatedAt = &now, &now

	created, err := s.repo.Maintenance.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Заявка на обслуживание создана",
		zap.Uint64("id", created.ID),
		zap.Uint64("asset_id", created.AssetID),
		zap.Uint64("requested_by", actor.ID),
	)
	return &created, nil
}

// UpdateRecord - закрытые заявки не редактируются. Переход в completed проставляет CompletedAt.
func (s *MaintenanceService) UpdateRecord(ctx context.Context, id uint64, payload dto.UpdateMaintenanceDTO) (*entities.MaintenanceRecord, error) {
	updated, err := s.repo.Maintenance.Update(ctx, id, func(m *entities.MaintenanceRecord) error {
		if constants.IsFinalMaintenanceStatus(m.Status) {
			return apperrors.NewHttpError(http.StatusConflict, "Yêu cầu bảo trì đã đóng, không thể chỉnh sửa", apperrors.ErrConflict,
				map[string]interface{}{"id": id, "status": m.Status})
		}
		utils.Patch(&m.Type, payload.Type)
		utils.Patch(&m.Description, payload.Description)
		utils.Patch(&m.Result, payload.Result)
		utils.Patch(&m.Interval, payload.Interval)
		utils.PatchTime(&m.ScheduledAt, payload.ScheduledAt)
		utils.PatchTime(&m.CompletedAt, payload.CompletedAt)
		if utils.Patch(&m.Status, payload.Status) && m.Status == constants.MaintenanceStatusCompleted && m.CompletedAt == nil {
			m.CompletedAt = utils.ToPtr(time.Now())
		}
		m.UpdatedAt = utils.ToPtr(time.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ApproveRecord - согласовать можно только заявку в статусе pending.
func (s *MaintenanceService) ApproveRecord(ctx context.Context, id uint64) (*entities.MaintenanceRecord, error) {
	actor, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Maintenance.Update(ctx, id, func(m *entities.MaintenanceRecord) error {
		if m.Status != constants.MaintenanceStatusPending {
			return apperrors.NewHttpError(http.StatusConflict, "Chỉ có thể phê duyệt yêu cầu đang chờ duyệt", apperrors.ErrConflict,
				map[string]interface{}{"id": id, "status": m.Status})
		}
		m.Status = constants.MaintenanceStatusApproved
		m.ApprovedBy = utils.ToPtr(actor.ID)
		m.UpdatedAt = utils.ToPtr(time.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Заявка на обслуживание согласована", zap.Uint64("id", id), zap.Uint64("approved_by", actor.ID))
	return &updated, nil
}

func (s *MaintenanceService) DeleteRecord(ctx context.Context, id uint64, reason string) error {
	if err := s.repo.Maintenance.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Заявка на обслуживание удалена", zap.Uint64("id", id), zap.String("reason", reason))
	return nil
}
