package entities

import (
	"time"

	"asset-system/pkg/constants"
	"asset-system/pkg/types"
)

type Asset struct {
	ID           uint64                `json:"id"`
	Code         string                `json:"code"`
	Name         string                `json:"name"`
	PlantID      uint64                `json:"plant_id"`
	Department   string                `json:"department,omitempty"`
	Model        string                `json:"model,omitempty"`
	SerialNumber string                `json:"serial_number,omitempty"`
	Manufacturer string                `json:"manufacturer,omitempty"`
	Status       constants.AssetStatus `json:"status"`
	InstalledAt  *time.Time            `json:"installed_at,omitempty"`

	types.BaseEntity
}

func (a Asset) GetID() uint64 { return a.ID }
