package entities

import (
	"time"

	"asset-system/pkg/constants"
	"asset-system/pkg/types"
)

// MaintenanceRecord - запись о плановом или внеплановом обслуживании.
type MaintenanceRecord struct {
	ID          uint64                      `json:"id"`
	AssetID     uint64                      `json:"asset_id"`
	Type        constants.MaintenanceType   `json:"type"`
	Status      constants.MaintenanceStatus `json:"status"`
	Description string                      `json:"description"`
	Result      string                      `json:"result,omitempty"`
	Interval    string                      `json:"interval,omitempty"`

	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	RequestedBy  uint64  `json:"requested_by"`
	ApprovedBy   *uint64 `json:"approved_by,omitempty"`
	DeleteReason string  `json:"delete_reason,omitempty"`

	types.BaseEntity
}

func (m MaintenanceRecord) GetID() uint64 { return m.ID }
