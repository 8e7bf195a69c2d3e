// Файл: main.go

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"asset-system/internal/stubapi"
	"asset-system/pkg/config"
	applogger "asset-system/pkg/logger"
)

func main() {
	// 1. Конфиг (внутри подгружается .env) и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Сервер с тестовыми данными
	srv, err := stubapi.New(ctx, stubapi.Options{JWT: cfg.JWT, Seed: true}, logger)
	if err != nil {
		logger.Fatal("Ошибка инициализации сервера", zap.Error(err))
	}

	// 3. Запуск
	addr := ":" + cfg.Server.Port
	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("addr", addr))
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Остановка сервера...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
}
