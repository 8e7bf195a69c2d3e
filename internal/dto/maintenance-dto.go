package dto

import (
	"time"

	"asset-system/pkg/constants"
)

type CreateMaintenanceDTO struct {
	AssetID     uint64                    `json:"asset_id" validate:"required,gt=0"`
	Type        constants.MaintenanceType `json:"type" validate:"required,oneof=preventive corrective"`
	Description string                    `json:"description" validate:"required,max=2000"`
	Interval    string                    `json:"interval,omitempty" validate:"omitempty,duration_format"`
	ScheduledAt *time.Time                `json:"scheduled_at,omitempty"`
}

type UpdateMaintenanceDTO struct {
	Type        *constants.MaintenanceType   `json:"type,omitempty"        validate:"omitempty,oneof=preventive corrective"`
	Status      *constants.MaintenanceStatus `json:"status,omitempty"      validate:"omitempty,oneof=pending approved in_progress completed rejected"`
	Description *string                      `json:"description,omitempty" validate:"omitempty,max=2000"`
	Result      *string                      `json:"result,omitempty"      validate:"omitempty,max=2000"`
	Interval    *string                      `json:"interval,omitempty"    validate:"omitempty,duration_format"`
	ScheduledAt *time.Time                   `json:"scheduled_at,omitempty"`
	CompletedAt *time.Time                   `json:"completed_at,omitempty"`
}
