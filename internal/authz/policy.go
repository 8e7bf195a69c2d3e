package authz

import (
	"strings"

	"asset-system/internal/entities"
	"asset-system/pkg/constants"
)

// Все предикаты тотальны: nil-пользователь, пустая должность или отдел -> false.

// IsDevTeam - id из фиксированного списка разработчиков.
func IsDevTeam(user *entities.User) bool {
	if user == nil {
		return false
	}
	_, ok := constants.DevTeamUserIDs[user.ID]
	return ok
}

// IsManager - руководящая должность или разработчик.
func IsManager(user *entities.User) bool {
	if user == nil {
		return false
	}
	if IsDevTeam(user) {
		return true
	}
	position, ok := user.PositionCode()
	return ok && position.IsManager()
}

// IsStaff не учитывает список разработчиков. Асимметрия с IsManager сохранена намеренно.
func IsStaff(user *entities.User) bool {
	position, ok := user.PositionCode()
	return ok && position.IsStaff()
}

// IsMechanicalElectricalManager - Quản đốc xưởng cơ điện, точное совпадение отдела.
func IsMechanicalElectricalManager(user *entities.User) bool {
	position, ok := user.PositionCode()
	if !ok || position != constants.PositionWorkshopManager {
		return false
	}
	return user.DepartmentName() == constants.DepartmentMechanicalElectrical
}

// IsProductionDeputyDirector - P.GĐ, отдел которого содержит один из маркеров производства.
func IsProductionDeputyDirector(user *entities.User) bool {
	position, ok := user.PositionCode()
	if !ok || position != constants.PositionDeputyDirector {
		return false
	}
	department := user.DepartmentName()
	if department == "" {
		return false
	}
	for _, marker := range constants.ProductionDepartmentMarkers {
		if strings.Contains(department, marker) {
			return true
		}
	}
	return false
}

// IsMechanicalElectricalStaff - любой сотрудник xưởng cơ điện, должность не важна.
func IsMechanicalElectricalStaff(user *entities.User) bool {
	return user.DepartmentName() == constants.DepartmentMechanicalElectrical
}

// GetUserRole: первое совпадение выигрывает.
func GetUserRole(user *entities.User) string {
	switch {
	case IsManager(user):
		return constants.RoleManager
	case IsStaff(user):
		return constants.RoleStaff
	default:
		return constants.RoleUnknown
	}
}

func CanViewMaintenanceResults(user *entities.User) bool {
	return IsManager(user)
}

func CanApproveMaintenance(user *entities.User) bool {
	return IsMechanicalElectricalManager(user) || IsProductionDeputyDirector(user) || IsDevTeam(user)
}

// CanCreateMaintenance шире, чем CanApproveMaintenance: любой QĐ может создать заявку.
func CanCreateMaintenance(user *entities.User) bool {
	if IsDevTeam(user) {
		return true
	}
	if IsMechanicalElectricalManager(user) {
		return true
	}
	if IsProductionDeputyDirector(user) {
		return true
	}
	position, ok := user.PositionCode()
	return ok && position == constants.PositionWorkshopManager
}

// Roles - результат классификации пользователя.
type Roles struct {
	DevTeam                     bool `json:"is_dev_team"`
	Manager                     bool `json:"is_manager"`
	Staff                       bool `json:"is_staff"`
	MechanicalElectricalManager bool `json:"is_mechanical_electrical_manager"`
	ProductionDeputyDirector    bool `json:"is_production_deputy_director"`
}

func Classify(user *entities.User) Roles {
	return Roles{
		DevTeam:                     IsDevTeam(user),
		Manager:                     IsManager(user),
		Staff:                       IsStaff(user),
		MechanicalElectricalManager: IsMechanicalElectricalManager(user),
		ProductionDeputyDirector:    IsProductionDeputyDirector(user),
	}
}
