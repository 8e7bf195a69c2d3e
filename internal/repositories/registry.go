package repositories

import "asset-system/internal/entities"

// Registry - все хранилища тестового сервера.
type Registry struct {
	Users       *MemoryRepository[entities.User]
	Plants      *MemoryRepository[entities.Plant]
	Assets      *MemoryRepository[entities.Asset]
	Maintenance *MemoryRepository[entities.MaintenanceRecord]
	Calibration *MemoryRepository[entities.CalibrationRecord]
}

func NewRegistry() *Registry {
	return &Registry{
		Users:       NewMemoryRepository(func(u *entities.User, id uint64) { u.ID = id }),
		Plants:      NewMemoryRepository(func(p *entities.Plant, id uint64) { p.ID = id }),
		Assets:      NewMemoryRepository(func(a *entities.Asset, id uint64) { a.ID = id }),
		Maintenance: NewMemoryRepository(func(m *entities.MaintenanceRecord, id uint64) { m.ID = id }),
		Calibration: NewMemoryRepository(func(c *entities.CalibrationRecord, id uint64) { c.ID = id }),
	}
}
