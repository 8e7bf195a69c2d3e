// Файл: pkg/constants/positions.go
package constants

// Position - код должности пользователя в том виде, в котором его отдаёт сервер.
type Position string

const (
	PositionGeneralDirector       Position = "TGĐ"
	PositionDeputyGeneralDirector Position = "P.TGĐ"
	PositionDirector              Position = "GĐ"
	PositionDeputyDirector        Position = "P.GĐ"
	PositionHeadOfDepartment      Position = "TP"
	PositionExpert                Position = "CG"
	PositionWorkshopManager       Position = "QĐ"
	PositionEmployee              Position = "NV"
	PositionWorker                Position = "CN"
	PositionDeputyTeamLead        Position = "PT"
	PositionTeamLead              Position = "TT"
	PositionIntern                Position = "TTS"
	PositionDeveloper             Position = "Developer"
)

// positionCodes - таблица соответствия "сырых" строк сервера и enum.
// Сравнение строгое: пробелы и регистр не нормализуются.
var positionCodes = map[string]Position{
	"TGĐ":       PositionGeneralDirector,
	"P.TGĐ":     PositionDeputyGeneralDirector,
	"GĐ":        PositionDirector,
	"P.GĐ":      PositionDeputyDirector,
	"TP":        PositionHeadOfDepartment,
	"CG":        PositionExpert,
	"QĐ":        PositionWorkshopManager,
	"NV":        PositionEmployee,
	"CN":        PositionWorker,
	"PT":        PositionDeputyTeamLead,
	"TT":        PositionTeamLead,
	"TTS":       PositionIntern,
	"Developer": PositionDeveloper,
}

var PositionNames = map[Position]string{
	PositionGeneralDirector:       "Tổng giám đốc",
	PositionDeputyGeneralDirector: "Phó tổng giám đốc",
	PositionDirector:              "Giám đốc",
	PositionDeputyDirector:        "Phó giám đốc",
	PositionHeadOfDepartment:      "Trưởng phòng",
	PositionExpert:                "Chuyên gia",
	PositionWorkshopManager:       "Quản đốc",
	PositionEmployee:              "Nhân viên",
	PositionWorker:                "Công nhân",
	PositionDeputyTeamLead:        "Phó tổ trưởng",
	PositionTeamLead:              "Tổ trưởng",
	PositionIntern:                "Thực tập sinh",
	PositionDeveloper:             "Lập trình viên",
}

// ManagerPositions - должности, дающие роль "manager".
var ManagerPositions = map[Position]struct{}{
	PositionGeneralDirector:       {},
	PositionDeputyGeneralDirector: {},
	PositionDirector:              {},
	PositionDeputyDirector:        {},
	PositionHeadOfDepartment:      {},
	PositionExpert:                {},
	PositionWorkshopManager:       {},
}

// StaffPositions - должности, дающие роль "staff".
var StaffPositions = map[Position]struct{}{
	PositionEmployee:       {},
	PositionWorker:         {},
	PositionDeputyTeamLead: {},
	PositionTeamLead:       {},
	PositionIntern:         {},
	PositionDeveloper:      {},
}

// ParsePosition ищет код в таблице. Пустая или неизвестная строка -> ("", false).
func ParsePosition(raw string) (Position, bool) {
	p, ok := positionCodes[raw]
	return p, ok
}

func (p Position) String() string {
	return string(p)
}

// IsManager / IsStaff - принадлежность к наборам должностей.
func (p Position) IsManager() bool {
	_, ok := ManagerPositions[p]
	return ok
}

func (p Position) IsStaff() bool {
	_, ok := StaffPositions[p]
	return ok
}

// AllPositions возвращает все известные коды в порядке иерархии (сверху вниз).
func AllPositions() []Position {
	return []Position{
		PositionGeneralDirector,
		PositionDeputyGeneralDirector,
		PositionDirector,
		PositionDeputyDirector,
		PositionHeadOfDepartment,
		PositionExpert,
		PositionWorkshopManager,
		PositionTeamLead,
		PositionDeputyTeamLead,
		PositionEmployee,
		PositionWorker,
		PositionIntern,
		PositionDeveloper,
	}
}
