package authz

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"asset-system/internal/entities"
	"asset-system/pkg/constants"
)

func user(id uint64, position, department string) *entities.User {
	u := &entities.User{ID: id}
	if position != "" {
		u.Position = null.StringFrom(position)
	}
	if department != "" {
		u.Department = null.StringFrom(department)
	}
	return u
}

var predicates = map[string]func(*entities.User) bool{
	"IsDevTeam":                     IsDevTeam,
	"IsManager":                     IsManager,
	"IsStaff":                       IsStaff,
	"IsMechanicalElectricalManager": IsMechanicalElectricalManager,
	"IsProductionDeputyDirector":    IsProductionDeputyDirector,
	"IsMechanicalElectricalStaff":   IsMechanicalElectricalStaff,
	"CanViewMaintenanceResults":     CanViewMaintenanceResults,
	"CanApproveMaintenance":         CanApproveMaintenance,
	"CanCreateMaintenance":          CanCreateMaintenance,
}

func TestPredicatesFailClosed(t *testing.T) {
	malformed := map[string]*entities.User{
		"nil":             nil,
		"empty":           {},
		"null position":   {ID: 10, Position: null.String{}, Department: null.StringFrom("xưởng cơ điện")},
		"unknown code":    user(11, "Boss", "SX"),
		"blank position":  {ID: 12, Position: null.StringFrom("")},
		"padded position": user(13, " QĐ", "phân xưởng khác"),
	}

	for name, u := range malformed {
		for predName, pred := range predicates {
			if name == "null position" && predName == "IsMechanicalElectricalStaff" {
				continue // отдел задан, должность не важна
			}
			assert.NotPanics(t, func() { pred(u) })
			assert.False(t, pred(u), "%s(%s)", predName, name)
		}
		assert.Equal(t, constants.RoleUnknown, GetUserRole(u), name)
	}
}

func TestDevTeamOverride(t *testing.T) {
	for _, id := range []uint64{596, 947} {
		u := user(id, "TTS", "kho")

		assert.True(t, IsDevTeam(u))
		assert.True(t, IsManager(u))
		assert.True(t, CanApproveMaintenance(u))
		assert.True(t, CanCreateMaintenance(u))
		assert.True(t, CanViewMaintenanceResults(u))
		assert.Equal(t, constants.RoleManager, GetUserRole(u))
	}

	// без должности тоже работает
	assert.True(t, IsManager(&entities.User{ID: 596}))
	assert.False(t, IsStaff(&entities.User{ID: 947}))
}

func TestDeveloperPositionIsStaffOnly(t *testing.T) {
	u := user(100, "Developer", "")

	assert.True(t, IsStaff(u))
	assert.False(t, IsManager(u))
	assert.Equal(t, constants.RoleStaff, GetUserRole(u))
}

func TestCreateIsBroaderThanApprove(t *testing.T) {
	u := user(101, "QĐ", "phân xưởng khác")

	assert.True(t, CanCreateMaintenance(u))
	assert.False(t, CanApproveMaintenance(u))
	assert.False(t, IsMechanicalElectricalManager(u))
}

func TestMechanicalElectricalRules(t *testing.T) {
	manager := user(200, "QĐ", "xưởng cơ điện")
	assert.True(t, IsMechanicalElectricalManager(manager))
	assert.True(t, IsMechanicalElectricalStaff(manager))
	assert.True(t, CanApproveMaintenance(manager))
	assert.True(t, CanCreateMaintenance(manager))

	// точное совпадение, не подстрока
	assert.False(t, IsMechanicalElectricalManager(user(201, "QĐ", "xưởng cơ điện 2")))
	assert.False(t, IsMechanicalElectricalManager(user(202, "TP", "xưởng cơ điện")))

	worker := user(203, "CN", "xưởng cơ điện")
	assert.True(t, IsMechanicalElectricalStaff(worker))
	assert.False(t, CanCreateMaintenance(worker))
	assert.True(t, IsMechanicalElectricalStaff(&entities.User{Department: null.StringFrom("xưởng cơ điện")}))
}

func TestProductionDeputyDirector(t *testing.T) {
	tests := []struct {
		department string
		want       bool
	}{
		{"Phòng Kỹ Thuật", true},
		{"khối sản xuất", true},
		{"Phòng SX 1", true},
		{"phòng kỹ thuật", false},
		{"Phòng Kế toán", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.department, func(t *testing.T) {
			u := user(300, "P.GĐ", tt.department)
			assert.Equal(t, tt.want, IsProductionDeputyDirector(u))
			assert.Equal(t, tt.want, CanApproveMaintenance(u))
			assert.Equal(t, tt.want, CanCreateMaintenance(u))
		})
	}

	assert.False(t, IsProductionDeputyDirector(user(301, "GĐ", "khối sản xuất")))
}

func TestGetUserRole(t *testing.T) {
	for _, p := range []string{"TGĐ", "P.TGĐ", "GĐ", "P.GĐ", "TP", "CG", "QĐ"} {
		u := user(400, p, "")
		assert.True(t, IsManager(u), p)
		assert.False(t, IsStaff(u), p)
		assert.Equal(t, constants.RoleManager, GetUserRole(u), p)
		assert.Equal(t, IsManager(u), CanViewMaintenanceResults(u), p)
	}
	for _, p := range []string{"NV", "CN", "PT", "TT", "TTS", "Developer"} {
		u := user(401, p, "")
		assert.Equal(t, constants.RoleStaff, GetUserRole(u), p)
		assert.False(t, CanViewMaintenanceResults(u), p)
	}

	// разработчик со staff-должностью -> manager (IsManager проверяется первым)
	assert.Equal(t, constants.RoleManager, GetUserRole(user(596, "NV", "")))
}

func TestClassify(t *testing.T) {
	roles := Classify(user(500, "QĐ", "xưởng cơ điện"))
	assert.Equal(t, Roles{Manager: true, MechanicalElectricalManager: true}, roles)

	assert.Equal(t, Roles{}, Classify(nil))
}

func TestCan(t *testing.T) {
	qd := user(600, "QĐ", "phân xưởng khác")

	assert.True(t, Can(qd, MaintenanceCreate))
	assert.False(t, Can(qd, MaintenanceApprove))
	assert.True(t, Can(qd, MaintenanceResultsView))
	assert.False(t, Can(qd, "maintenance:delete"))
	assert.False(t, Can(nil, MaintenanceCreate))

	gk := NewGatekeeper(zap.NewNop())
	assert.True(t, gk.Can(user(947, "", ""), MaintenanceApprove))
	assert.False(t, gk.Can(nil, MaintenanceApprove))
}
