package resources

import (
	"context"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"asset-system/internal/entities"
	"asset-system/internal/store"
	"asset-system/pkg/constants"
)

type CalibrationStore struct {
	*store.Store[entities.CalibrationRecord]
	gateway Gateway[entities.CalibrationRecord]
}

func NewCalibrationStore(gateway Gateway[entities.CalibrationRecord], logger *zap.Logger) *CalibrationStore {
	return &CalibrationStore{
		Store:   store.New[entities.CalibrationRecord](constants.ResourceCalibration, gateway, calibrationMessages, logger),
		gateway: gateway,
	}
}

func (s *CalibrationStore) FetchByAsset(ctx context.Context, assetID uint64) ([]entities.CalibrationRecord, error) {
	return s.ReplaceAll(ctx, msgCalibrationByAsset, func(ctx context.Context) ([]entities.CalibrationRecord, error) {
		return s.gateway.FetchWhere(ctx, "by-asset", strconv.FormatUint(assetID, 10))
	})
}

// FetchDue - записи из кэша, у которых следующая поверка наступает не позже before.
// Запросов к серверу не делает.
func (s *CalibrationStore) FetchDue(before time.Time) []entities.CalibrationRecord {
	return DueCalibrations(s.Snapshot().Items, before)
}

// DueCalibrations отбирает записи с NextDueAt <= before, ближайшие первыми.
func DueCalibrations(items []entities.CalibrationRecord, before time.Time) []entities.CalibrationRecord {
	out := make([]entities.CalibrationRecord, 0)
	for _, rec := range items {
		if rec.NextDueAt != nil && !rec.NextDueAt.After(before) {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NextDueAt.Before(*out[j].NextDueAt)
	})
	return out
}
