package resources

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"asset-system/internal/entities"
	"asset-system/internal/store"
	"asset-system/pkg/constants"
)

// AssetStore - кэш справочника оборудования.
type AssetStore struct {
	*store.Store[entities.Asset]
	gateway Gateway[entities.Asset]
}

func NewAssetStore(gateway Gateway[entities.Asset], logger *zap.Logger) *AssetStore {
	return &AssetStore{
		Store:   store.New[entities.Asset](constants.ResourceAssets, gateway, assetMessages, logger),
		gateway: gateway,
	}
}

// FetchByPlant - GET /assets/by-plant/{id}, результат заменяет Items.
func (s *AssetStore) FetchByPlant(ctx context.Context, plantID uint64) ([]entities.Asset, error) {
	return s.ReplaceAll(ctx, msgAssetsByPlant, func(ctx context.Context) ([]entities.Asset, error) {
		return s.gateway.FetchWhere(ctx, "by-plant", strconv.FormatUint(plantID, 10))
	})
}

// FetchByStatus - GET /assets/by-status/{status}.
func (s *AssetStore) FetchByStatus(ctx context.Context, status constants.AssetStatus) ([]entities.Asset, error) {
	return s.ReplaceAll(ctx, msgAssetsByStatus, func(ctx context.Context) ([]entities.Asset, error) {
		return s.gateway.FetchWhere(ctx, "by-status", string(status))
	})
}
