package resources

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/internal/entities"
	"asset-system/internal/store"
	"asset-system/internal/transport"
	"asset-system/pkg/constants"
)

func newClient(t *testing.T, mux *http.ServeMux) *transport.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return transport.NewClient(srv.URL, 2*time.Second, zap.NewNop())
}

func reply(body string, code int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = io.WriteString(w, body)
	}
}

func TestAssetStore_FilteredFetchReplacesItems(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /assets", reply(`{"success":true,"data":[{"id":1},{"id":2},{"id":3}]}`, http.StatusOK))
	mux.HandleFunc("GET /assets/by-plant/7", reply(`{"success":true,"data":[{"id":2,"plant_id":7}]}`, http.StatusOK))
	mux.HandleFunc("GET /assets/by-status/broken", reply(`{"success":true,"data":[]}`, http.StatusOK))

	client := newClient(t, mux)
	s := NewAssetStore(transport.NewResourceAPI[entities.Asset](client, "/assets"), zap.NewNop())
	ctx := context.Background()

	_, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, s.Snapshot().Items, 3)

	items, err := s.FetchByPlant(ctx, 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, []entities.Asset{{ID: 2, PlantID: 7}}, s.Snapshot().Items)

	_, err = s.FetchByStatus(ctx, constants.AssetStatusBroken)
	require.NoError(t, err)
	st := s.Snapshot()
	assert.Empty(t, st.Items)
	assert.NotNil(t, st.Items)
	assert.Equal(t, store.PhaseFulfilled, st.Phase)
}

func TestAssetStore_FallbackMessages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /assets", reply(`{"success":true,"data":[{"id":1}]}`, http.StatusOK))
	mux.HandleFunc("GET /assets/by-plant/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("GET /assets/5", reply(`{"success":true}`, http.StatusOK))

	client := newClient(t, mux)
	s := NewAssetStore(transport.NewResourceAPI[entities.Asset](client, "/assets"), zap.NewNop())
	ctx := context.Background()

	_, err := s.FetchAll(ctx)
	require.NoError(t, err)

	// пустой ответ без ошибки -> запасное сообщение операции
	_, err = s.FetchByID(ctx, 5)
	require.Error(t, err)
	assert.Equal(t, "Không thể lấy thông tin thiết bị", s.Snapshot().Error)

	// 500 без тела -> текст транспорта, Items не тронуты
	_, err = s.FetchByPlant(ctx, 1)
	require.Error(t, err)
	st := s.Snapshot()
	assert.Contains(t, st.Error, "500")
	assert.Len(t, st.Items, 1)
	assert.False(t, st.Loading)
}

func TestMaintenanceStore_Approve(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /maintenance", reply(`{"success":true,"data":[{"id":1,"status":"pending"},{"id":2,"status":"completed"}]}`, http.StatusOK))
	mux.HandleFunc("PATCH /maintenance/1/approve", reply(`{"success":true,"data":{"id":1,"status":"approved","approved_by":596}}`, http.StatusOK))
	mux.HandleFunc("PATCH /maintenance/2/approve", reply(`{"success":false,"message":"Yêu cầu đã hoàn thành"}`, http.StatusConflict))

	client := newClient(t, mux)
	s := NewMaintenanceStore(transport.NewResourceAPI[entities.MaintenanceRecord](client, "/maintenance"), zap.NewNop())
	ctx := context.Background()

	_, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, s.Pending(), 1)

	rec, err := s.Approve(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, rec.ApprovedBy)
	assert.Equal(t, uint64(596), *rec.ApprovedBy)

	st := s.Snapshot()
	assert.Equal(t, constants.MaintenanceStatusApproved, st.Items[0].Status)
	assert.Equal(t, OpApprove, st.LastOp)
	assert.Empty(t, s.Pending())

	_, err = s.Approve(ctx, 2)
	require.Error(t, err)
	st = s.Snapshot()
	assert.Equal(t, "Yêu cầu đã hoàn thành", st.Error)
	assert.Equal(t, store.PhaseRejected, st.Phase)
	assert.Equal(t, constants.MaintenanceStatusCompleted, st.Items[1].Status)
}

func TestMaintenanceStore_FetchByAssetAndDelete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /maintenance/by-asset/3", reply(`{"success":true,"data":[{"id":4,"asset_id":3},{"id":5,"asset_id":3}]}`, http.StatusOK))
	mux.HandleFunc("DELETE /maintenance/4", reply(`{"success":true,"message":"Đã xóa"}`, http.StatusOK))
	mux.HandleFunc("DELETE /maintenance/5", reply(`{"success":false}`, http.StatusOK))

	client := newClient(t, mux)
	s := NewMaintenanceStore(transport.NewResourceAPI[entities.MaintenanceRecord](client, "/maintenance"), zap.NewNop())
	ctx := context.Background()

	_, err := s.FetchByAsset(ctx, 3)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, 4, "nhập nhầm"))
	assert.Len(t, s.Snapshot().Items, 1)

	err = s.Delete(ctx, 5, "")
	require.Error(t, err)
	st := s.Snapshot()
	assert.Equal(t, "Không thể xóa bảo trì", st.Error)
	assert.Len(t, st.Items, 1)
}

func TestDueCalibrations(t *testing.T) {
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	early := now.Add(-48 * time.Hour)
	soon := now.Add(24 * time.Hour)
	late := now.Add(30 * 24 * time.Hour)

	items := []entities.CalibrationRecord{
		{ID: 1, NextDueAt: &soon},
		{ID: 2},
		{ID: 3, NextDueAt: &late},
		{ID: 4, NextDueAt: &early},
	}

	due := DueCalibrations(items, now.Add(7*24*time.Hour))
	require.Len(t, due, 2)
	assert.Equal(t, uint64(4), due[0].ID)
	assert.Equal(t, uint64(1), due[1].ID)

	assert.Empty(t, DueCalibrations(nil, now))
}

func TestCalibrationStore_FetchByAssetAndDue(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /calibration/by-asset/9", reply(`{"success":true,"data":[
		{"id":1,"asset_id":9,"calibrated_at":"2025-10-01T00:00:00Z","next_due_at":"2026-10-01T00:00:00Z","result":"pass"},
		{"id":2,"asset_id":9,"calibrated_at":"2026-09-01T00:00:00Z","next_due_at":"2027-09-01T00:00:00Z","result":"pass"}
	]}`, http.StatusOK))

	client := newClient(t, mux)
	s := NewCalibrationStore(transport.NewResourceAPI[entities.CalibrationRecord](client, "/calibration"), zap.NewNop())

	_, err := s.FetchByAsset(context.Background(), 9)
	require.NoError(t, err)

	due := s.FetchDue(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
	require.Len(t, due, 1)
	assert.Equal(t, uint64(1), due[0].ID)
}

func TestPlantStore_NameByID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /plants", reply(`{"success":true,"data":[{"id":1,"code":"P1","name":"Nhà máy Bình Dương"}]}`, http.StatusOK))
	mux.HandleFunc("POST /plants", reply(`{"success":true,"data":{"id":2,"code":"P2","name":"Nhà máy Đồng Nai"}}`, http.StatusCreated))

	client := newClient(t, mux)
	s := NewPlantStore(transport.NewResourceAPI[entities.Plant](client, "/plants"), zap.NewNop())
	ctx := context.Background()

	_, err := s.FetchAll(ctx)
	require.NoError(t, err)
	_, err = s.Create(ctx, map[string]string{"code": "P2", "name": "Nhà máy Đồng Nai"})
	require.NoError(t, err)

	assert.Equal(t, map[uint64]string{1: "Nhà máy Bình Dương", 2: "Nhà máy Đồng Nai"}, s.NameByID())
}
