package entities

import (
	"time"

	"asset-system/pkg/constants"
	"asset-system/pkg/types"
)

type CalibrationRecord struct {
	ID           uint64                      `json:"id"`
	AssetID      uint64                      `json:"asset_id"`
	CalibratedAt time.Time                   `json:"calibrated_at"`
	NextDueAt    *time.Time                  `json:"next_due_at,omitempty"`
	Result       constants.CalibrationResult `json:"result"`
	Certificate  string                      `json:"certificate,omitempty"`
	PerformedBy  string                      `json:"performed_by,omitempty"`

	types.BaseEntity
}

func (c CalibrationRecord) GetID() uint64 { return c.ID }
