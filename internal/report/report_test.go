package report

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/store"
	"asset-system/pkg/constants"
)

var testPlants = []entities.Plant{
	{ID: 1, Code: "BD", Name: "Nhà máy Bình Dương"},
	{ID: 2, Code: "DN", Name: "Nhà máy Đồng Nai"},
}

type fakeCreator struct {
	created []dto.CreateAssetDTO
	reject  map[string]error
}

func (c *fakeCreator) Create(ctx context.Context, payload any) (*entities.Asset, error) {
	p := payload.(dto.CreateAssetDTO)
	if err, ok := c.reject[p.Code]; ok {
		return nil, err
	}
	c.created = append(c.created, p)
	return &entities.Asset{ID: uint64(len(c.created)), Code: p.Code, Name: p.Name, PlantID: p.PlantID, Status: p.Status}, nil
}

// assetGateway - минимальный шлюз, чтобы гонять импорт через настоящий стор.
type assetGateway struct {
	nextID uint64
	fail   map[string]string
}

func (g *assetGateway) FetchAll(ctx context.Context) ([]entities.Asset, error) { return nil, nil }
func (g *assetGateway) FetchByID(ctx context.Context, id uint64) (*entities.Asset, error) {
	return nil, nil
}
func (g *assetGateway) Create(ctx context.Context, payload any) (*entities.Asset, error) {
	p := payload.(dto.CreateAssetDTO)
	if msg, ok := g.fail[p.Code]; ok {
		return nil, errors.New(msg)
	}
	g.nextID++
	return &entities.Asset{ID: g.nextID, Code: p.Code, Name: p.Name, PlantID: p.PlantID}, nil
}
func (g *assetGateway) Update(ctx context.Context, id uint64, patch any) (*entities.Asset, error) {
	return nil, nil
}
func (g *assetGateway) Delete(ctx context.Context, id uint64, reason string) (store.DeleteResult, error) {
	return store.DeleteResult{}, nil
}

func writeRows(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.xlsx")
	f := excelize.NewFile()
	defer f.Close()
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExportAssets_ThenImport(t *testing.T) {
	installed := time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC)
	assets := []entities.Asset{
		{ID: 1, Code: "MN-001", Name: "Máy nén khí", PlantID: 1, Model: "GA-37", Status: constants.AssetStatusActive, InstalledAt: &installed},
		{ID: 3, Code: "MM-003", Name: "Máy may công nghiệp", PlantID: 2, Status: constants.AssetStatusBroken},
	}
	path := filepath.Join(t.TempDir(), "assets.xlsx")
	require.NoError(t, ExportAssets(path, assets, testPlants))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	rows, err := f.GetRows(assetSheet)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.Len(t, rows, 3)
	assert.Equal(t, "Mã thiết bị", rows[0][1])
	assert.Equal(t, "Nhà máy Bình Dương", rows[1][3])
	require.GreaterOrEqual(t, len(rows[2]), 9)
	assert.Equal(t, "Hỏng", rows[2][8])

	creator := &fakeCreator{}
	res, err := NewAssetImporter(creator, zap.NewNop()).Import(context.Background(), path, testPlants)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Zero(t, res.Failed)

	require.Len(t, creator.created, 2)
	first := creator.created[0]
	assert.Equal(t, "MN-001", first.Code)
	assert.Equal(t, uint64(1), first.PlantID)
	assert.Equal(t, "GA-37", first.Model)
	assert.Equal(t, constants.AssetStatusActive, first.Status)
	require.NotNil(t, first.InstalledAt)
	assert.True(t, installed.Equal(*first.InstalledAt))
	assert.Equal(t, uint64(2), creator.created[1].PlantID)
	assert.Equal(t, constants.AssetStatusBroken, creator.created[1].Status)
}

func TestImport_HeaderAfterTitleAndSkippedRows(t *testing.T) {
	path := writeRows(t, [][]interface{}{
		{"DANH SÁCH THIẾT BỊ"},
		{},
		{"STT", "Mã TS", "Tên tài sản", "Xưởng", "Trạng thái", "Bộ phận"},
		{1, "MN-010", "Máy nén", "BD", "active"},
		{},
		{2, "", "Dòng không có mã", "BD"},
		{3, "MB-011", "Máy bơm", "XX"},
		{4, "#bad", "Mã sai", "DN"},
		{5, "MB-012", "Máy bơm 2", "DN", "không rõ"},
		{6, "XN-001", "Xe nâng", "BD", "", "Tổng kho"},
		{7, "TD-002", "Tổng đài nội bộ", "DN"},
		{"Tổng cộng:", "7"},
	})

	creator := &fakeCreator{}
	res, err := ImportAssets(context.Background(), path, creator, testPlants)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Created)
	assert.Equal(t, 3, res.Failed)
	assert.Equal(t, 2, res.Skipped)

	require.Len(t, creator.created, 3)
	assert.Equal(t, "XN-001", creator.created[1].Code)
	assert.Equal(t, "Tổng kho", creator.created[1].Department)
	assert.Equal(t, "Tổng đài nội bộ", creator.created[2].Name)

	require.Len(t, res.Errors, 3)
	assert.Equal(t, RowError{Row: 7, Code: "MB-011", Message: "Không tìm thấy nhà máy 'XX'"}, res.Errors[0])
	assert.Equal(t, 8, res.Errors[1].Row)
	assert.Contains(t, res.Errors[1].Message, "Dữ liệu không hợp lệ")
	assert.Contains(t, res.Errors[1].Message, "Code")
	assert.Equal(t, "Trạng thái không hợp lệ: 'không rõ'", res.Errors[2].Message)
}

func TestImport_NoHeader(t *testing.T) {
	path := writeRows(t, [][]interface{}{
		{"STT", "Mô tả"},
		{1, "abc"},
	})
	_, err := ImportAssets(context.Background(), path, &fakeCreator{}, testPlants)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestImport_MissingFile(t *testing.T) {
	_, err := ImportAssets(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"), &fakeCreator{}, testPlants)
	assert.Error(t, err)
}

func TestImport_CanceledContext(t *testing.T) {
	path := writeRows(t, [][]interface{}{
		{"Mã", "Tên", "Nhà máy"},
		{"MN-020", "Máy nén", "BD"},
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	creator := &fakeCreator{}
	res, err := ImportAssets(ctx, path, creator, testPlants)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, creator.created)
}

func TestImport_ThroughStoreKeepsServerError(t *testing.T) {
	path := writeRows(t, [][]interface{}{
		{"Mã", "Tên", "Nhà máy"},
		{"MN-030", "Máy nén", "1"},
		{"MN-031", "Máy nén trùng", "2"},
	})
	gw := &assetGateway{fail: map[string]string{"MN-031": "Mã thiết bị đã tồn tại"}}
	st := store.New[entities.Asset](constants.ResourceAssets, gw, store.Messages{Create: "Không thể tạo thiết bị"}, zap.NewNop())

	res, err := NewAssetImporter(st, zap.NewNop()).Import(context.Background(), path, testPlants)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, "Mã thiết bị đã tồn tại", res.Errors[0].Message)

	snap := st.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "MN-030", snap.Items[0].Code)
	assert.Equal(t, "Mã thiết bị đã tồn tại", snap.Error)
}

func TestExportMaintenance(t *testing.T) {
	approver := uint64(8)
	done := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	records := []entities.MaintenanceRecord{
		{ID: 1, AssetID: 1, Type: constants.MaintenanceTypePreventive, Status: constants.MaintenanceStatusCompleted,
			Description: "Thay dầu", RequestedBy: 10, ApprovedBy: &approver, CompletedAt: &done},
		{ID: 2, AssetID: 99, Type: constants.MaintenanceTypeCorrective, Status: constants.MaintenanceStatusPending,
			Description: "Kêu to", RequestedBy: 11},
	}
	assets := []entities.Asset{{ID: 1, Code: "MN-001", Name: "Máy nén khí"}}
	path := filepath.Join(t.TempDir(), "maintenance.xlsx")
	require.NoError(t, ExportMaintenance(path, records, assets))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(maintenanceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.GreaterOrEqual(t, len(rows[1]), 10)
	assert.Equal(t, []string{"1", "MN-001", "Máy nén khí", "Định kỳ", "Hoàn thành", "Thay dầu", "", "10/01/2026", "10", "8"}, rows[1][:10])
	assert.Equal(t, "99", rows[2][1])
	assert.Equal(t, "Chờ duyệt", rows[2][4])
}

func TestIsTotal(t *testing.T) {
	cases := []struct {
		row  []string
		want bool
	}{
		{[]string{"Tổng cộng", "5"}, true},
		{[]string{"", "CỘNG:"}, true},
		{[]string{"", "", "Total"}, true},
		{[]string{"1", "XN-001", "Xe nâng", "BD", "Tổng kho"}, false},
		{[]string{"2", "TD-002", "Tổng đài"}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, isTotal(tc.row, 1), "%v", tc.row)
	}
}
