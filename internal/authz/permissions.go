// internal/authz/permissions.go
package authz

import "asset-system/internal/entities"

// --- ВОЗМОЖНОСТИ (capabilities), которые проверяет UI и тестовый сервер ---

const (
	MaintenanceCreate      = "maintenance:create"
	MaintenanceApprove     = "maintenance:approve"
	MaintenanceResultsView = "maintenance:results:view"
)

// capabilityRules - таблица "возможность -> предикат".
var capabilityRules = map[string]func(*entities.User) bool{
	MaintenanceCreate:      CanCreateMaintenance,
	MaintenanceApprove:     CanApproveMaintenance,
	MaintenanceResultsView: CanViewMaintenanceResults,
}
