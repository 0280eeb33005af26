package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"attendance_backend/internals/configs"
	maintenanceService "attendance_backend/internals/features/attendance/maintenance/service"
	authHelper "attendance_backend/internals/features/users/auth/helper"
)

func testConfig(t *testing.T) *configs.Config {
	t.Helper()
	return &configs.Config{
		DB: configs.DBConfig{
			Driver:   "sqlite",
			DSN:      "file:" + filepath.Join(t.TempDir(), "manage.db") + "?_foreign_keys=on",
			LogLevel: "silent",
		},
		JWT: configs.JWTConfig{Secret: "manage-secret", TTL: time.Hour},
	}
}

func TestRun(t *testing.T) {
	authHelper.BcryptCost = bcrypt.MinCost
	cfg := testConfig(t)
	ctx := context.Background()

	require.NoError(t, run(ctx, cfg, "migrate", nil))
	require.NoError(t, run(ctx, cfg, "create-admin", []string{"--username", "root", "--password", "supersecret"}))
	require.NoError(t, run(ctx, cfg, "create-admin", []string{"--username", "root"}), "promoting twice is fine")

	err := run(ctx, cfg, "purge", nil)
	assert.True(t, errors.Is(err, maintenanceService.ErrPurgeNotConfirmed))
	require.NoError(t, run(ctx, cfg, "purge", []string{"--yes"}))

	require.NoError(t, run(ctx, cfg, "seed", []string{"--dir", filepath.Join("..", "..", "internals", "seeds")}))
	assert.Error(t, run(ctx, cfg, "seed", []string{"--dir", t.TempDir()}))

	assert.Error(t, run(ctx, cfg, "bogus", nil))
}
