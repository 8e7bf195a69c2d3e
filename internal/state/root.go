package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"asset-system/internal/entities"
	"asset-system/internal/events"
	"asset-system/internal/resources"
	"asset-system/internal/store"
	"asset-system/internal/transport"
	"asset-system/pkg/constants"
	"asset-system/pkg/eventbus"
)

// Gateways - шлюзы всех ресурсов. В проде - transport.ResourceAPI, в тестах - что угодно.
type Gateways struct {
	Assets      resources.Gateway[entities.Asset]
	Maintenance resources.Gateway[entities.MaintenanceRecord]
	Calibration resources.Gateway[entities.CalibrationRecord]
	Plants      store.Gateway[entities.Plant]
}

// HTTPGateways собирает шлюзы поверх одного REST-клиента.
func HTTPGateways(client *transport.Client) Gateways {
	return Gateways{
		Assets:      transport.NewResourceAPI[entities.Asset](client, "/"+constants.ResourceAssets),
		Maintenance: transport.NewResourceAPI[entities.MaintenanceRecord](client, "/"+constants.ResourceMaintenance),
		Calibration: transport.NewResourceAPI[entities.CalibrationRecord](client, "/"+constants.ResourceCalibration),
		Plants:      transport.NewResourceAPI[entities.Plant](client, "/"+constants.ResourcePlants),
	}
}

// Root - корневой агрегат всех сторов. Создаётся один раз и передаётся по ссылке.
type Root struct {
	Assets      *resources.AssetStore
	Maintenance *resources.MaintenanceStore
	Calibration *resources.CalibrationStore
	Plants      *resources.PlantStore

	bus         *eventbus.Bus
	unsubscribe []func()
}

func New(client *transport.Client, bus *eventbus.Bus, logger *zap.Logger) *Root {
	return NewWithGateways(HTTPGateways(client), bus, logger)
}

// NewWithGateways - bus может быть nil, тогда события не публикуются.
func NewWithGateways(g Gateways, bus *eventbus.Bus, logger *zap.Logger) *Root {
	r := &Root{
		Assets:      resources.NewAssetStore(g.Assets, logger),
		Maintenance: resources.NewMaintenanceStore(g.Maintenance, logger),
		Calibration: resources.NewCalibrationStore(g.Calibration, logger),
		Plants:      resources.NewPlantStore(g.Plants, logger),
		bus:         bus,
	}
	if bus != nil {
		r.unsubscribe = append(r.unsubscribe,
			r.Assets.Subscribe(publisher[entities.Asset](bus)),
			r.Maintenance.Subscribe(publisher[entities.MaintenanceRecord](bus)),
			r.Calibration.Subscribe(publisher[entities.CalibrationRecord](bus)),
			r.Plants.Subscribe(publisher[entities.Plant](bus)),
		)
	}
	return r
}

// publisher публикует StoreSettled на каждое завершение операции.
// Стор вызывает слушателей по одному и в порядке переходов, поэтому seen не требует синхронизации.
func publisher[T store.Identifiable](bus *eventbus.Bus) store.Listener[T] {
	var seen uint64
	return func(resource string, st store.State[T]) {
		if st.Settlements == seen {
			return
		}
		seen = st.Settlements
		bus.Publish(context.Background(), events.StoreSettled{
			Resource: resource,
			Op:       st.LastOp,
			Phase:    st.Phase,
			Error:    st.Error,
			Warning:  st.Warning,
			Items:    len(st.Items),
			At:       time.Now(),
		})
	}
}

// ClearErrors сбрасывает ошибки во всех сторах.
func (r *Root) ClearErrors() {
	r.Assets.ClearError()
	r.Maintenance.ClearError()
	r.Calibration.ClearError()
	r.Plants.ClearError()
}

// Loading - идёт ли хоть одна операция.
func (r *Root) Loading() bool {
	return r.Assets.Snapshot().Loading ||
		r.Maintenance.Snapshot().Loading ||
		r.Calibration.Snapshot().Loading ||
		r.Plants.Snapshot().Loading
}

// Errors - непустые ошибки по ресурсам.
func (r *Root) Errors() map[string]string {
	out := make(map[string]string)
	add := func(resource, msg string) {
		if msg != "" {
			out[resource] = msg
		}
	}
	add(r.Assets.Resource(), r.Assets.Snapshot().Error)
	add(r.Maintenance.Resource(), r.Maintenance.Snapshot().Error)
	add(r.Calibration.Resource(), r.Calibration.Snapshot().Error)
	add(r.Plants.Resource(), r.Plants.Snapshot().Error)
	return out
}

// Close отписывает публикацию событий.
func (r *Root) Close() {
	for _, u := range r.unsubscribe {
		u()
	}
	r.unsubscribe = nil
}
