package seeders

import (
	"time"

	"github.com/aarondl/null/v8"

	"asset-system/internal/dto"
	"asset-system/pkg/constants"
)

// SeedPassword - пароль всех тестовых пользователей.
const SeedPassword = "matkhau123"

func user(id uint64, name, code string, position constants.Position, department string) dto.UserSeedDTO {
	u := dto.UserSeedDTO{
		ID:           id,
		FullName:     name,
		EmployeeCode: code,
		Password:     SeedPassword,
	}
	if position != "" {
		u.Position = null.StringFrom(string(position))
	}
	if department != "" {
		u.Department = null.StringFrom(department)
	}
	return u
}

// usersData - по пользователю на каждую должность, плюс особые случаи политики доступа.
var usersData = []dto.UserSeedDTO{
	user(1, "Nguyễn Văn An", "TGD001", constants.PositionGeneralDirector, "Ban giám đốc"),
	user(2, "Trần Thị Bình", "PTGD001", constants.PositionDeputyGeneralDirector, "Ban giám đốc"),
	user(3, "Lê Văn Cường", "GD001", constants.PositionDirector, "Nhà máy Bình Dương"),
	user(4, "Phạm Minh Dũng", "PGD001", constants.PositionDeputyDirector, "Phòng Kỹ Thuật sản xuất"),
	user(5, "Hoàng Thị Em", "PGD002", constants.PositionDeputyDirector, "Phòng Hành chính"),
	user(6, "Vũ Văn Phong", "TP001", constants.PositionHeadOfDepartment, "Phòng Kế hoạch"),
	user(7, "Đặng Thị Giang", "CG001", constants.PositionExpert, "Phòng Chất lượng"),
	user(8, "Bùi Văn Hải", "QD001", constants.PositionWorkshopManager, constants.DepartmentMechanicalElectrical),
	user(9, "Đỗ Văn Hùng", "QD002", constants.PositionWorkshopManager, "xưởng may"),
	user(10, "Ngô Thị Lan", "NV001", constants.PositionEmployee, constants.DepartmentMechanicalElectrical),
	user(11, "Dương Văn Long", "CN001", constants.PositionWorker, "xưởng may"),
	user(12, "Lý Thị Mai", "PT001", constants.PositionDeputyTeamLead, "xưởng may"),
	user(13, "Trịnh Văn Nam", "TT001", constants.PositionTeamLead, constants.DepartmentMechanicalElectrical),
	user(14, "Mai Thị Oanh", "TTS001", constants.PositionIntern, "Phòng Kế hoạch"),
	user(15, "Phan Văn Quang", "DEV001", constants.PositionDeveloper, "Phòng CNTT"),
	user(596, "Tạ Minh Sơn", "DEV596", constants.PositionDeveloper, "Phòng CNTT"),
	user(947, "Hồ Thị Tâm", "DEV947", "", ""),
}

var plantsData = []dto.CreatePlantDTO{
	{Code: "BD", Name: "Nhà máy Bình Dương", Location: "KCN VSIP, Bình Dương"},
	{Code: "DN", Name: "Nhà máy Đồng Nai", Location: "KCN Biên Hòa 2, Đồng Nai"},
}

var assetsData = []dto.CreateAssetDTO{
	{Code: "MN-001", Name: "Máy nén khí Atlas Copco", PlantID: 1, Department: constants.DepartmentMechanicalElectrical,
		Model: "GA37", SerialNumber: "AC-37-1001", Manufacturer: "Atlas Copco", Status: constants.AssetStatusActive},
	{Code: "MB-002", Name: "Máy biến áp 1000kVA", PlantID: 1, Department: constants.DepartmentMechanicalElectrical,
		Manufacturer: "THIBIDI", Status: constants.AssetStatusMaintenance},
	{Code: "MM-003", Name: "Máy may công nghiệp", PlantID: 2, Department: "xưởng may",
		Model: "DDL-9000", Manufacturer: "Juki", Status: constants.AssetStatusBroken},
	{Code: "CB-004", Name: "Cân bàn điện tử", PlantID: 2, Department: "Phòng Chất lượng",
		Manufacturer: "Mettler Toledo", Status: constants.AssetStatusActive},
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var maintenanceData = []struct {
	RequestedBy uint64
	Payload     dto.CreateMaintenanceDTO
}{
	{8, dto.CreateMaintenanceDTO{AssetID: 1, Type: constants.MaintenanceTypePreventive,
		Description: "Thay dầu và lọc gió định kỳ", Interval: "90d"}},
	{10, dto.CreateMaintenanceDTO{AssetID: 2, Type: constants.MaintenanceTypeCorrective,
		Description: "Kiểm tra nhiệt độ cuộn dây tăng bất thường"}},
	{11, dto.CreateMaintenanceDTO{AssetID: 3, Type: constants.MaintenanceTypeCorrective,
		Description: "Đứt chỉ liên tục, kiểm tra ổ thoi"}},
}

var calibrationData = []dto.CreateCalibrationDTO{
	{AssetID: 4, CalibratedAt: day(2025, 11, 1), NextDueAt: ptrTime(day(2026, 11, 1)),
		Result: constants.CalibrationResultPass, Certificate: "QUATEST3-2025-1187", PerformedBy: "QUATEST 3"},
	{AssetID: 1, CalibratedAt: day(2026, 3, 15), NextDueAt: ptrTime(day(2027, 3, 15)),
		Result: constants.CalibrationResultPass, PerformedBy: "Xưởng cơ điện"},
}

func ptrTime(t time.Time) *time.Time { return &t }
