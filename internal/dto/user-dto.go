package dto

import "github.com/aarondl/null/v8"

// UserSeedDTO - описание пользователя для тестового сервера.
type UserSeedDTO struct {
	ID           uint64      `json:"id" validate:"required,gt=0"`
	FullName     string      `json:"full_name" validate:"required"`
	EmployeeCode string      `json:"employee_code" validate:"required"`
	Email        string      `json:"email,omitempty" validate:"omitempty,email"`
	Position     null.String `json:"position" validate:"omitempty,position_code"`
	Department   null.String `json:"department"`
	Password     string      `json:"password" validate:"required,min=6"`
}
