package types

import "time"

// BaseEntity - служебные отметки времени, проставляет сервер.
type BaseEntity struct {
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
