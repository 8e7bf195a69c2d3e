package resources

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"asset-system/internal/entities"
	"asset-system/internal/store"
	"asset-system/pkg/constants"
)

type MaintenanceStore struct {
	*store.Store[entities.MaintenanceRecord]
	gateway Gateway[entities.MaintenanceRecord]
}

func NewMaintenanceStore(gateway Gateway[entities.MaintenanceRecord], logger *zap.Logger) *MaintenanceStore {
	return &MaintenanceStore{
		Store:   store.New[entities.MaintenanceRecord](constants.ResourceMaintenance, gateway, maintenanceMessages, logger),
		gateway: gateway,
	}
}

func (s *MaintenanceStore) FetchByStatus(ctx context.Context, status constants.MaintenanceStatus) ([]entities.MaintenanceRecord, error) {
	return s.ReplaceAll(ctx, msgMaintenanceByStatus, func(ctx context.Context) ([]entities.MaintenanceRecord, error) {
		return s.gateway.FetchWhere(ctx, "by-status", string(status))
	})
}

func (s *MaintenanceStore) FetchByAsset(ctx context.Context, assetID uint64) ([]entities.MaintenanceRecord, error) {
	return s.ReplaceAll(ctx, msgMaintenanceByAsset, func(ctx context.Context) ([]entities.MaintenanceRecord, error) {
		return s.gateway.FetchWhere(ctx, "by-asset", strconv.FormatUint(assetID, 10))
	})
}

// Approve - PATCH /maintenance/{id}/approve. Сервер возвращает обновлённую запись,
// она заменяет кэшированную так же, как при Update.
func (s *MaintenanceStore) Approve(ctx context.Context, id uint64) (*entities.MaintenanceRecord, error) {
	return s.Replace(ctx, OpApprove, msgMaintenanceApprove, func(ctx context.Context) (*entities.MaintenanceRecord, error) {
		return s.gateway.PatchAction(ctx, id, "approve", nil)
	})
}

// Pending - записи, ожидающие согласования, из текущего кэша.
func (s *MaintenanceStore) Pending() []entities.MaintenanceRecord {
	var out []entities.MaintenanceRecord
	for _, rec := range s.Snapshot().Items {
		if rec.Status == constants.MaintenanceStatusPending {
			out = append(out, rec)
		}
	}
	return out
}
