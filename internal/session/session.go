package session

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"asset-system/internal/authz"
	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/transport"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/service"
)

// UserClaims - то, что клиент может прочитать из access-токена.
type UserClaims = service.JwtCustomClaim

// ParseClaims читает claims без проверки подписи, секрета у клиента нет.
// Просроченный токен отклоняется с ErrTokenExpired.
func ParseClaims(token string) (*UserClaims, error) {
	claims, err := service.ParseUnverified(token)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Session - авторизованный пользователь клиента и его токен.
type Session struct {
	client *transport.Client
	logger *zap.Logger

	mu     sync.RWMutex
	user   *entities.User
	claims *UserClaims
}

func New(client *transport.Client, logger *zap.Logger) *Session {
	return &Session{client: client, logger: logger.Named("session")}
}

// Login - POST /auth/login. При успехе токен ставится на клиент.
func (s *Session) Login(ctx context.Context, employeeCode, password string) (*entities.User, error) {
	var resp dto.AuthResponseDTO
	body := dto.LoginDTO{EmployeeCode: employeeCode, Password: password}
	if err := s.client.Post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, fmt.Errorf("вход не выполнен: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("вход не выполнен: %w", apperrors.ErrEmptyResponse)
	}

	claims, err := ParseClaims(resp.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("сервер выдал непригодный токен: %w", err)
	}

	s.set(resp.AccessToken, claims, resp.User)
	s.logger.Info("Пользователь вошёл",
		zap.Uint64("user_id", resp.User.ID),
		zap.String("role", authz.GetUserRole(&resp.User)),
	)
	return s.CurrentUser(), nil
}

// Restore - продолжить сессию по сохранённому токену: GET /auth/me.
func (s *Session) Restore(ctx context.Context, token string) (*entities.User, error) {
	claims, err := ParseClaims(token)
	if err != nil {
		return nil, err
	}

	s.client.SetToken(token)
	var user entities.User
	if err := s.client.Get(ctx, "/auth/me", &user); err != nil {
		s.client.SetToken("")
		return nil, fmt.Errorf("не удалось восстановить сессию: %w", err)
	}

	s.set(token, claims, user)
	return s.CurrentUser(), nil
}

func (s *Session) set(token string, claims *UserClaims, user entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client.SetToken(token)
	s.claims = claims
	s.user = &user
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client.SetToken("")
	s.user = nil
	s.claims = nil
}

// CurrentUser - копия пользователя или nil, если вход не выполнен.
func (s *Session) CurrentUser() *entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Claims() *UserClaims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return nil
	}
	c := *s.claims
	return &c
}

// Roles - вычисленные роли текущего пользователя (для анонима всё false).
func (s *Session) Roles() authz.Roles {
	return authz.Classify(s.CurrentUser())
}
