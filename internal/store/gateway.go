package store

import "context"

// Gateway - внешний HTTP-коллаборатор для одного ресурса.
// Ошибка означает отказ; nil-элемент без ошибки - пустой ответ.
type Gateway[T Identifiable] interface {
	FetchAll(ctx context.Context) ([]T, error)
	FetchByID(ctx context.Context, id uint64) (*T, error)
	Create(ctx context.Context, payload any) (*T, error)
	Update(ctx context.Context, id uint64, patch any) (*T, error)
	Delete(ctx context.Context, id uint64, reason string) (DeleteResult, error)
}

// DeleteResult - ответ сервера на удаление: {success, message}.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
