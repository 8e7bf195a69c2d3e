package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/authz"
	"asset-system/internal/entities"
	"asset-system/pkg/api"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/service"
	"asset-system/pkg/utils"
)

// UserFinder - откуда middleware берёт пользователя по id из токена.
type UserFinder interface {
	GetUserByID(ctx context.Context, id uint64) (*entities.User, error)
}

type AuthMiddleware struct {
	jwtService service.JWTService
	users      UserFinder
	gatekeeper *authz.Gatekeeper
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, users UserFinder, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		users:      users,
		gatekeeper: authz.NewGatekeeper(logger),
		logger:     logger,
	}
}

// Auth проверяет Bearer-токен и кладёт пользователя в контекст запроса.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Debug("AuthMiddleware: Пустой заголовок Authorization")
			return api.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: Неверный формат заголовка Authorization")
			return api.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
			return api.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: Попытка доступа с refresh токеном")
			return api.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		user, err := m.users.GetUserByID(c.Request().Context(), claims.UserID)
		if err != nil {
			m.logger.Warn("AuthMiddleware: Пользователь из токена не найден", zap.Uint64("userID", claims.UserID))
			return api.ErrorResponse(c, err, m.logger)
		}

		c.SetRequest(c.Request().WithContext(utils.WithUser(c.Request().Context(), user)))
		m.logger.Debug("AuthMiddleware: Пользователь аутентифицирован", zap.Uint64("userID", user.ID))

		return next(c)
	}
}

// Require пропускает запрос, только если у пользователя есть capability.
// Ставится после Auth.
func (m *AuthMiddleware) Require(capability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := utils.GetUserFromCtx(c.Request().Context())
			if err != nil {
				return api.ErrorResponse(c, err, m.logger)
			}
			if !m.gatekeeper.Can(user, capability) {
				return api.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}
