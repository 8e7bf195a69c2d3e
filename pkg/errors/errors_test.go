package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	const fallback = "Không thể lấy danh sách thiết bị"

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, fallback},
		{"server message wins", &APIError{StatusCode: 400, Message: "Mã thiết bị đã tồn tại", Err: errors.New("transport")}, "Mã thiết bị đã tồn tại"},
		{"transport text", &APIError{Err: errors.New("connection refused")}, "connection refused"},
		{"status only", &APIError{StatusCode: 502}, "HTTP 502"},
		{"empty api error", &APIError{}, fallback},
		{"wrapped api error", fmt.Errorf("assets: %w", &APIError{Message: "boom"}), "boom"},
		{"empty response", ErrEmptyResponse, fallback},
		{"empty envelope", &APIError{StatusCode: 200, Err: ErrEmptyResponse}, fallback},
		{"plain error", errors.New("boom"), "boom"},
		{"blank plain error", errors.New(""), fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err, fallback))
		})
	}
}

func TestHttpErrorUnwrap(t *testing.T) {
	inner := errors.New("db down")
	err := NewHttpError(500, "Внутренняя ошибка сервера", inner, nil)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "Внутренняя ошибка сервера")
}
