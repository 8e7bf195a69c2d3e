package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/service"
	"asset-system/pkg/utils"
)

type AuthService struct {
	users      *repositories.MemoryRepository[entities.User]
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthService(users *repositories.MemoryRepository[entities.User], jwtService service.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, jwtService: jwtService, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	logger := s.logger.With(zap.String("employee_code", payload.EmployeeCode))

	user, err := s.users.FindOne(ctx, func(u entities.User) bool { return u.EmployeeCode == payload.EmployeeCode })
	if err != nil {
		logger.Warn("Пользователь не найден")
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		logger.Warn("Неверный пароль")
		return nil, apperrors.ErrInvalidCredentials
	}

	access, _, err := s.jwtService.GenerateTokens(service.Subject{
		UserID:       user.ID,
		EmployeeCode: user.EmployeeCode,
		Position:     user.Position.String,
		Department:   user.Department.String,
	})
	if err != nil {
		return nil, apperrors.NewHttpError(500, "Không thể tạo phiên đăng nhập", err, nil)
	}

	logger.Info("Пользователь вошёл в систему", zap.Uint64("user_id", user.ID))
	return &dto.AuthResponseDTO{AccessToken: access, User: user}, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return &user, nil
}
