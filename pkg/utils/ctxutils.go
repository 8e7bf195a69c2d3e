package utils

import (
	"context"

	"asset-system/internal/entities"
	"asset-system/pkg/contextkeys"
	apperrors "asset-system/pkg/errors"
)

func WithUser(ctx context.Context, user *entities.User) context.Context {
	return context.WithValue(ctx, contextkeys.UserKey, user)
}

// GetUserFromCtx - пользователь, положенный AuthMiddleware.
func GetUserFromCtx(ctx context.Context) (*entities.User, error) {
	user, ok := ctx.Value(contextkeys.UserKey).(*entities.User)
	if !ok || user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
