// pkg/constants/constants.go
package constants

//============== DEPARTMENTS ==============

// DepartmentMechanicalElectrical сравнивается строго (==).
const DepartmentMechanicalElectrical = "xưởng cơ điện"

// ProductionDepartmentMarkers ищутся как подстроки в названии отдела.
var ProductionDepartmentMarkers = []string{"Kỹ Thuật", "sản xuất", "SX"}

//============== DEV TEAM ==============

// DevTeamUserIDs - пользователи с полным доступом поверх всех правил.
var DevTeamUserIDs = map[uint64]struct{}{
	596: {},
	947: {},
}

//============== ROLES ==============

const (
	RoleManager = "manager"
	RoleStaff   = "staff"
	RoleUnknown = "unknown"
)

//============== RESOURCES ==============

// Базовые пути ресурсов на сервере.
const (
	ResourceAssets      = "assets"
	ResourceMaintenance = "maintenance"
	ResourceCalibration = "calibration"
	ResourcePlants      = "plants"
)

//============== HEADERS ==============

const HeaderRequestID = "X-Request-ID"
