package constants

// --- СТАТУСЫ ОБОРУДОВАНИЯ ---
type AssetStatus string

const (
	AssetStatusActive      AssetStatus = "active"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusBroken      AssetStatus = "broken"
	AssetStatusRetired     AssetStatus = "retired"
)

// --- СТАТУСЫ ОБСЛУЖИВАНИЯ ---
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "pending"
	MaintenanceStatusApproved   MaintenanceStatus = "approved"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
	MaintenanceStatusRejected   MaintenanceStatus = "rejected"
)

// Финальные статусы
var FinalMaintenanceStatuses = []MaintenanceStatus{
	MaintenanceStatusCompleted,
	MaintenanceStatusRejected,
}

func IsFinalMaintenanceStatus(s MaintenanceStatus) bool {
	for _, f := range FinalMaintenanceStatuses {
		if f == s {
			return true
		}
	}
	return false
}

type MaintenanceType string

const (
	MaintenanceTypePreventive MaintenanceType = "preventive"
	MaintenanceTypeCorrective MaintenanceType = "corrective"
)

type CalibrationResult string

const (
	CalibrationResultPass CalibrationResult = "pass"
	CalibrationResultFail CalibrationResult = "fail"
)
