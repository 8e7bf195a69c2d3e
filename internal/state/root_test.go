package state

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/internal/events"
	"asset-system/internal/listeners"
	"asset-system/internal/store"
	"asset-system/internal/transport"
	"asset-system/pkg/constants"
	"asset-system/pkg/eventbus"
)

func reply(body string, code int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = io.WriteString(w, body)
	}
}

func newRoot(t *testing.T, bus *eventbus.Bus) *Root {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /assets", reply(`{"success":true,"data":[{"id":1},{"id":2}]}`, http.StatusOK))
	mux.HandleFunc("GET /plants", reply(`{"success":false,"message":"Hết phiên đăng nhập"}`, http.StatusUnauthorized))
	mux.HandleFunc("GET /maintenance", reply(`{"success":true,"data":[]}`, http.StatusOK))
	mux.HandleFunc("GET /calibration", reply(`{"success":true,"data":[]}`, http.StatusOK))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := transport.NewClient(srv.URL, 2*time.Second, zap.NewNop())
	r := New(client, bus, zap.NewNop())
	t.Cleanup(r.Close)
	return r
}

func TestRoot_StoresAreIndependent(t *testing.T) {
	r := newRoot(t, nil)
	ctx := context.Background()

	_, err := r.Assets.FetchAll(ctx)
	require.NoError(t, err)
	_, err = r.Plants.FetchAll(ctx)
	require.Error(t, err)

	assert.Len(t, r.Assets.Snapshot().Items, 2)
	assert.Empty(t, r.Assets.Snapshot().Error)
	assert.Equal(t, map[string]string{constants.ResourcePlants: "Hết phiên đăng nhập"}, r.Errors())
	assert.False(t, r.Loading())

	r.ClearErrors()
	assert.Empty(t, r.Errors())
}

func TestRoot_PublishesSettlements(t *testing.T) {
	bus := eventbus.New(zap.NewNop())

	var mu sync.Mutex
	var got []events.StoreSettled
	bus.Subscribe(events.StoreSettledEventName, func(ctx context.Context, e eventbus.Event) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(events.StoreSettled))
		return nil
	})

	r := newRoot(t, bus)
	ctx := context.Background()

	_, _ = r.Assets.FetchAll(ctx)
	_, _ = r.Plants.FetchAll(ctx)
	// не завершение операции - события нет
	r.Assets.ClearError()
	r.Assets.ClearCurrent()
	bus.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)

	byResource := map[string]events.StoreSettled{}
	for _, e := range got {
		byResource[e.Resource] = e
	}

	assets := byResource[constants.ResourceAssets]
	assert.Equal(t, store.OpFetchAll, assets.Op)
	assert.Equal(t, store.PhaseFulfilled, assets.Phase)
	assert.Equal(t, 2, assets.Items)

	plants := byResource[constants.ResourcePlants]
	assert.True(t, plants.Failed())
	assert.Equal(t, "Hết phiên đăng nhập", plants.Error)
}

func TestRoot_SettlementListenerCounts(t *testing.T) {
	bus := eventbus.New(zap.NewNop())
	l := listeners.NewSettlementListener(zap.NewNop())
	l.Register(bus)

	r := newRoot(t, bus)
	ctx := context.Background()

	_, _ = r.Assets.FetchAll(ctx)
	_, _ = r.Assets.FetchAll(ctx)
	_, _ = r.Plants.FetchAll(ctx)
	_, _ = r.Maintenance.FetchAll(ctx)
	bus.Wait()

	stats := l.Stats()
	assert.Equal(t, listeners.SettlementStats{Fulfilled: 2}, stats[constants.ResourceAssets])
	assert.Equal(t, listeners.SettlementStats{Rejected: 1, LastError: "Hết phiên đăng nhập"}, stats[constants.ResourcePlants])
	assert.Equal(t, 1, stats[constants.ResourceMaintenance].Fulfilled)
	_, touched := stats[constants.ResourceCalibration]
	assert.False(t, touched)
}

func TestRoot_CloseStopsPublishing(t *testing.T) {
	bus := eventbus.New(zap.NewNop())
	l := listeners.NewSettlementListener(zap.NewNop())
	l.Register(bus)

	r := newRoot(t, bus)
	r.Close()

	_, _ = r.Assets.FetchAll(context.Background())
	bus.Wait()
	assert.Empty(t, l.Stats())
}
