package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-system/pkg/constants"
	apperrors "asset-system/pkg/errors"
)

// Response - разобранный конверт {success, message, data}.
// Success == nil, если сервер не прислал это поле.
type Response struct {
	StatusCode int
	Success    *bool
	Message    string
	Data       json.RawMessage
}

type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client - REST-клиент к серверу учёта оборудования.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger

	tokenMutex sync.RWMutex
	token      string
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.Named("api_client"),
	}
}

// NewClientWithHTTP - для тестов и нестандартных транспортов.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	c := NewClient(baseURL, 0, logger)
	c.httpClient = httpClient
	return c
}

func (c *Client) SetToken(token string) {
	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.tokenMutex.RLock()
	defer c.tokenMutex.RUnlock()
	return c.token
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	_, err := c.Do(ctx, http.MethodGet, path, nil, out)
	return err
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	_, err := c.Do(ctx, http.MethodPost, path, body, out)
	return err
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	_, err := c.Do(ctx, http.MethodPut, path, body, out)
	return err
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	_, err := c.Do(ctx, http.MethodPatch, path, body, out)
	return err
}

func (c *Client) Delete(ctx context.Context, path string, body, out any) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, body, out)
}

// Do выполняет запрос и раскладывает конверт. data декодируется в out, если оно есть.
//
// Ошибки:
//   - транспорт: *APIError{Err}
//   - не-2xx: *APIError{StatusCode, Message из конверта}; если тело не разобрать - Err со статусом
//   - 2xx и success:false: *APIError{StatusCode, Message}; без сообщения - Err: ErrEmptyResponse
func (c *Client) Do(ctx context.Context, method, path string, body, out any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации тела запроса %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса %s %s: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(constants.HeaderRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("HTTP запрос не выполнен",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, &apperrors.APIError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("ошибка чтения ответа: %w", err)}
	}

	c.logger.Debug("HTTP запрос",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(started)),
	)

	var env envelope
	parseErr := error(nil)
	if len(bytes.TrimSpace(raw)) > 0 {
		parseErr = json.Unmarshal(raw, &env)
	}

	res := &Response{StatusCode: resp.StatusCode, Success: env.Success, Message: env.Message, Data: env.Data}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if parseErr == nil && env.Message != "" {
			return res, &apperrors.APIError{StatusCode: resp.StatusCode, Message: env.Message}
		}
		return res, &apperrors.APIError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s %s: %s", method, path, resp.Status),
		}
	}

	if parseErr != nil {
		return res, &apperrors.APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("ошибка парсинга JSON: %w", parseErr)}
	}

	if env.Success != nil && !*env.Success {
		if env.Message == "" {
			return res, &apperrors.APIError{StatusCode: resp.StatusCode, Err: apperrors.ErrEmptyResponse}
		}
		return res, &apperrors.APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && hasData(env.Data) {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return res, &apperrors.APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("ошибка парсинга data: %w", err)}
		}
	}

	return res, nil
}

func hasData(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
