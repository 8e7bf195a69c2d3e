package main

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/internal/stubapi"
	"asset-system/pkg/config"
	"asset-system/seeders"
)

func startStub(t *testing.T) config.APIConfig {
	t.Helper()
	srv, err := stubapi.New(context.Background(), stubapi.Options{
		JWT:  config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: time.Hour},
		Seed: true,
	}, zap.NewNop())
	require.NoError(t, err)

	httpSrv := httptest.NewServer(srv.Echo)
	t.Cleanup(httpSrv.Close)
	return config.APIConfig{BaseURL: httpSrv.URL + "/api", Timeout: 2 * time.Second}
}

func TestExecuteExitCodes(t *testing.T) {
	api := startStub(t)
	ctx := context.Background()

	cases := []struct {
		name string
		opts options
		want int
	}{
		{"whoami", options{cmd: "whoami", user: "QD001", password: seeders.SeedPassword}, 0},
		{"plants", options{cmd: "plants", user: "QD001", password: seeders.SeedPassword}, 0},
		{"sai mật khẩu", options{cmd: "whoami", user: "QD001", password: "sai-mat-khau"}, 1},
		{"lệnh lạ", options{cmd: "khong-co", user: "QD001", password: seeders.SeedPassword}, 1},
		{"export không có file", options{cmd: "export", user: "QD001", password: seeders.SeedPassword}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, execute(ctx, api, tc.opts, zap.NewNop()))
		})
	}
}
