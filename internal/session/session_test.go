package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/transport"
	"asset-system/pkg/api"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/service"
)

var manager = entities.User{
	ID:           12,
	FullName:     "Trần Văn B",
	EmployeeCode: "NV012",
	Position:     null.StringFrom("QĐ"),
	Department:   null.StringFrom("xưởng cơ điện"),
}

func issue(t *testing.T, ttl time.Duration) string {
	t.Helper()
	access, _, err := service.NewJWTService("secret", ttl, time.Hour, zap.NewNop()).GenerateTokens(service.Subject{
		UserID:     manager.ID,
		Position:   manager.Position.String,
		Department: manager.Department.String,
	})
	require.NoError(t, err)
	return access
}

func writeEnvelope(w http.ResponseWriter, code int, env any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(env)
}

func newServer(t *testing.T, token string) *transport.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body dto.LoginDTO
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "matkhau123" {
			writeEnvelope(w, http.StatusUnauthorized, api.Envelope[any]{Message: "Sai mã nhân viên hoặc mật khẩu"})
			return
		}
		writeEnvelope(w, http.StatusOK, api.Envelope[dto.AuthResponseDTO]{
			Success: true,
			Data:    dto.AuthResponseDTO{AccessToken: token, User: manager},
		})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			writeEnvelope(w, http.StatusUnauthorized, api.Envelope[any]{Message: "Chưa đăng nhập"})
			return
		}
		writeEnvelope(w, http.StatusOK, api.Envelope[entities.User]{Success: true, Data: manager})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return transport.NewClient(srv.URL, 2*time.Second, zap.NewNop())
}

func TestLogin(t *testing.T) {
	token := issue(t, time.Hour)
	client := newServer(t, token)
	s := New(client, zap.NewNop())

	assert.Nil(t, s.CurrentUser())
	assert.False(t, s.Roles().Manager)

	user, err := s.Login(context.Background(), "NV012", "matkhau123")
	require.NoError(t, err)
	assert.Equal(t, manager.ID, user.ID)
	assert.Equal(t, token, client.Token())
	assert.Equal(t, manager.ID, s.Claims().UserID)

	roles := s.Roles()
	assert.True(t, roles.Manager)
	assert.True(t, roles.MechanicalElectricalManager)

	s.Logout()
	assert.Nil(t, s.CurrentUser())
	assert.Empty(t, client.Token())
}

func TestLogin_WrongPassword(t *testing.T) {
	client := newServer(t, issue(t, time.Hour))
	s := New(client, zap.NewNop())

	_, err := s.Login(context.Background(), "NV012", "sai")
	require.Error(t, err)
	assert.Equal(t, "Sai mã nhân viên hoặc mật khẩu", apperrors.Message(err, ""))
	assert.Nil(t, s.CurrentUser())
}

func TestLogin_ExpiredTokenRejected(t *testing.T) {
	client := newServer(t, issue(t, -time.Minute))
	s := New(client, zap.NewNop())

	_, err := s.Login(context.Background(), "NV012", "matkhau123")
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	assert.Empty(t, client.Token())
}

func TestRestore(t *testing.T) {
	token := issue(t, time.Hour)
	client := newServer(t, token)
	s := New(client, zap.NewNop())

	user, err := s.Restore(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "NV012", user.EmployeeCode)

	other := New(client, zap.NewNop())
	_, err = other.Restore(context.Background(), issue(t, 2*time.Hour))
	require.Error(t, err)
	assert.Nil(t, other.CurrentUser())
}

func TestParseClaims(t *testing.T) {
	claims, err := ParseClaims(issue(t, time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "QĐ", claims.Position)
	assert.Equal(t, "xưởng cơ điện", claims.Department)

	_, err = ParseClaims(issue(t, -time.Minute))
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}
