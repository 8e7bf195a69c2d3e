package dto

import (
	"time"

	"asset-system/pkg/constants"
)

type CreateCalibrationDTO struct {
	AssetID      uint64                      `json:"asset_id" validate:"required,gt=0"`
	CalibratedAt time.Time                   `json:"calibrated_at" validate:"required"`
	NextDueAt    *time.Time                  `json:"next_due_at,omitempty"`
	Result       constants.CalibrationResult `json:"result" validate:"required,oneof=pass fail"`
	Certificate  string                      `json:"certificate,omitempty"`
	PerformedBy  string                      `json:"performed_by,omitempty"`
}

type UpdateCalibrationDTO struct {
	CalibratedAt *time.Time                   `json:"calibrated_at,omitempty"`
	NextDueAt    *time.Time                   `json:"next_due_at,omitempty"`
	Result       *constants.CalibrationResult `json:"result,omitempty"       validate:"omitempty,oneof=pass fail"`
	Certificate  *string                      `json:"certificate,omitempty"`
	PerformedBy  *string                      `json:"performed_by,omitempty"`
}
