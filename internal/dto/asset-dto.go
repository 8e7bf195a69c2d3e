package dto

import (
	"time"

	"asset-system/pkg/constants"
)

type CreateAssetDTO struct {
	Code         string                `json:"code" validate:"required,max=64,asset_code"`
	Name         string                `json:"name" validate:"required"`
	PlantID      uint64                `json:"plant_id" validate:"required,gt=0"`
	Department   string                `json:"department,omitempty"`
	Model        string                `json:"model,omitempty"`
	SerialNumber string                `json:"serial_number,omitempty"`
	Manufacturer string                `json:"manufacturer,omitempty"`
	Status       constants.AssetStatus `json:"status" validate:"omitempty,oneof=active maintenance broken retired"`
	InstalledAt  *time.Time            `json:"installed_at,omitempty"`
}

type UpdateAssetDTO struct {
	Code         *string                `json:"code,omitempty"          validate:"omitempty,max=64,asset_code"`
	Name         *string                `json:"name,omitempty"          validate:"omitempty,min=1"`
	PlantID      *uint64                `json:"plant_id,omitempty"      validate:"omitempty,gt=0"`
	Department   *string                `json:"department,omitempty"`
	Model        *string                `json:"model,omitempty"`
	SerialNumber *string                `json:"serial_number,omitempty"`
	Manufacturer *string                `json:"manufacturer,omitempty"`
	Status       *constants.AssetStatus `json:"status,omitempty"        validate:"omitempty,oneof=active maintenance broken retired"`
	InstalledAt  *time.Time             `json:"installed_at,omitempty"`
}
