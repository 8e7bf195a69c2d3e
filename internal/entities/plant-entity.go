package entities

import "asset-system/pkg/types"

// Plant - завод / цех.
type Plant struct {
	ID       uint64 `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`

	types.BaseEntity
}

func (p Plant) GetID() uint64 { return p.ID }
