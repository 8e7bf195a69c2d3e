package service

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "asset-system/pkg/errors"
)

// Subject - данные пользователя, которые кладутся в токен.
type Subject struct {
	UserID       uint64
	EmployeeCode string
	Position     string
	Department   string
}

type JwtCustomClaim struct {
	UserID         uint64 `json:"userId"`
	EmployeeCode   string `json:"employeeCode,omitempty"`
	Position       string `json:"position,omitempty"`
	Department     string `json:"department,omitempty"`
	IsRefreshToken bool   `json:"isRefreshToken,omitempty"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateTokens(subject Subject) (string, string, error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
	GetAccessTokenTTL() time.Duration
	GetRefreshTokenTTL() time.Duration
}

type jwtService struct {
	SecretKey       string
	AccessTokenExp  time.Duration
	RefreshTokenExp time.Duration
	logger          *zap.Logger
}

func NewJWTService(secretKey string, accessTokenExp, refreshTokenExp time.Duration, logger *zap.Logger) JWTService {
	return &jwtService{
		SecretKey:       secretKey,
		AccessTokenExp:  accessTokenExp,
		RefreshTokenExp: refreshTokenExp,
		logger:          logger.Named("jwt"),
	}
}

func (service *jwtService) claims(subject Subject, refresh bool, ttl time.Duration) *JwtCustomClaim {
	now := time.Now()
	return &JwtCustomClaim{
		UserID:         subject.UserID,
		EmployeeCode:   subject.EmployeeCode,
		Position:       subject.Position,
		Department:     subject.Department,
		IsRefreshToken: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func (service *jwtService) GenerateTokens(subject Subject) (string, string, error) {
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS512, service.claims(subject, false, service.AccessTokenExp))
	accessTokenString, err := accessToken.SignedString([]byte(service.SecretKey))
	if err != nil {
		return "", "", err
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS512, service.claims(subject, true, service.RefreshTokenExp))
	refreshTokenString, err := refreshToken.SignedString([]byte(service.SecretKey))
	if err != nil {
		return "", "", err
	}

	return accessTokenString, refreshTokenString, nil
}

func (s *jwtService) GetAccessTokenTTL() time.Duration {
	return s.AccessTokenExp
}

func (s *jwtService) GetRefreshTokenTTL() time.Duration {
	return s.RefreshTokenExp
}

func (service *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(service.SecretKey), nil
		default:
			return nil, apperrors.ErrInvalidSigningMethod
		}
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, apperrors.ErrTokenNotYetValid
		}
		service.logger.Debug("Ошибка парсинга или проверки подписи токена", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid {
		service.logger.Warn("Токен невалиден или не удалось извлечь claims")
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// ParseUnverified читает claims без проверки подписи. Для клиента, у которого нет секрета:
// сервер всё равно проверит токен на каждом запросе.
func ParseUnverified(tokenString string) (*JwtCustomClaim, error) {
	claims := &JwtCustomClaim{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return claims, apperrors.ErrTokenExpired
	}
	return claims, nil
}
