package resources

import (
	"go.uber.org/zap"

	"asset-system/internal/entities"
	"asset-system/internal/store"
	"asset-system/pkg/constants"
)

// PlantStore - только базовый CRUD.
type PlantStore struct {
	*store.Store[entities.Plant]
}

func NewPlantStore(gateway store.Gateway[entities.Plant], logger *zap.Logger) *PlantStore {
	return &PlantStore{
		Store: store.New[entities.Plant](constants.ResourcePlants, gateway, plantMessages, logger),
	}
}

// NameByID - словарь id -> название для отчётов.
func (s *PlantStore) NameByID() map[uint64]string {
	items := s.Snapshot().Items
	out := make(map[uint64]string, len(items))
	for _, p := range items {
		out[p.ID] = p.Name
	}
	return out
}
