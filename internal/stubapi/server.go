package stubapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"asset-system/internal/repositories"
	"asset-system/internal/routes"
	"asset-system/pkg/api"
	"asset-system/pkg/config"
	"asset-system/pkg/constants"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/middleware"
	"asset-system/pkg/service"
	"asset-system/pkg/validation"
	"asset-system/seeders"
)

// Options - настройки тестового сервера.
type Options struct {
	JWT  config.JWTConfig
	Seed bool
}

// Server - тестовый бэкенд учёта оборудования в памяти.
type Server struct {
	Echo     *echo.Echo
	Registry *repositories.Registry
	JWT      service.JWTService
}

func New(ctx context.Context, opts Options, logger *zap.Logger) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Lỗi máy chủ nội bộ", err, nil)
				_ = api.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		TargetHeader: constants.HeaderRequestID,
	}))

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, constants.HeaderRequestID},
		ExposeHeaders: []string{constants.HeaderRequestID},
	}))

	e.Use(middleware.RequestLogger(logger.Named("http")))

	e.Validator = validation.New()

	registry := repositories.NewRegistry()
	if opts.Seed {
		if err := seeders.Seed(ctx, registry, logger); err != nil {
			return nil, err
		}
	}

	jwtSvc := service.NewJWTService(opts.JWT.SecretKey, opts.JWT.AccessTokenTTL, 7*opts.JWT.AccessTokenTTL, logger)
	routes.InitRouter(e, registry, jwtSvc, logger)

	return &Server{Echo: e, Registry: registry, JWT: jwtSvc}, nil
}

// Start блокирует до остановки сервера.
func (s *Server) Start(addr string) error {
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
