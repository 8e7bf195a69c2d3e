package dto

// DeleteDTO - тело DELETE-запроса. Причина пересылается серверу как есть.
type DeleteDTO struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// DeleteResultDTO - ответ сервера на удаление ({success, message}).
type DeleteResultDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
