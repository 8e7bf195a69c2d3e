package dto

type CreatePlantDTO struct {
	Code     string `json:"code" validate:"required,max=32"`
	Name     string `json:"name" validate:"required"`
	Location string `json:"location,omitempty" validate:"omitempty"`
}

type UpdatePlantDTO struct {
	Code     *string `json:"code,omitempty"     validate:"omitempty,max=32"`
	Name     *string `json:"name,omitempty"     validate:"omitempty,min=1"`
	Location *string `json:"location,omitempty" validate:"omitempty"`
}
