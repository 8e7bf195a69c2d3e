package dto

import "asset-system/internal/entities"

type LoginDTO struct {
	EmployeeCode string `json:"employee_code" validate:"required"`
	Password     string `json:"password" validate:"required,min=6"`
}

type AuthResponseDTO struct {
	AccessToken string        `json:"access_token"`
	User        entities.User `json:"user"`
}
