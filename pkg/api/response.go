package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "asset-system/pkg/errors"
)

// Envelope - формат любого ответа API: {success, message, data}.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// Success - для возврата одного объекта или списка
func Success[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Envelope[T]{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessList гарантирует, что пустой список уйдёт как [], а не null.
func SuccessList[T any](c echo.Context, message string, list []T) error {
	if list == nil {
		list = make([]T, 0)
	}
	return Success(c, http.StatusOK, message, list)
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, Envelope[any]{Success: false, Message: httpErr.Message, Data: httpErr.Details})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Trường '%s' không hợp lệ (%s)", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, Envelope[any]{Success: false, Message: "Dữ liệu không hợp lệ: " + strings.Join(msgs, "; ")})
	}

	for sentinel, known := range ErrorList {
		if errors.Is(err, sentinel) {
			return c.JSON(known.Code, Envelope[any]{Success: false, Message: known.Message})
		}
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, Envelope[any]{Success: false, Message: "Lỗi máy chủ nội bộ"})
}
