package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"daily_challenge_backend/internal/config"
	"daily_challenge_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportUsersWritesDatedFileWithPasswords(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.addUser(ctx, 1, model.RoleAdmin)
	env.addUser(ctx, 2, model.RoleUser)

	dir := t.TempDir()
	svc := NewExportService(env.users, &config.Config{
		Storage: config.StorageConfig{Type: "local", LocalPath: dir},
	})
	svc.now = func() time.Time { return fixedNow }

	filename, body, err := svc.ExportUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "users_export_2025-09-09.json", filename)

	var exported []model.User
	require.NoError(t, json.Unmarshal(body, &exported))
	require.Len(t, exported, 2)
	assert.Equal(t, "secret123", exported[0].Password)

	archived, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, body, archived)
}

func TestExportUsersSurvivesArchiveFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.addUser(ctx, 1, model.RoleUser)

	svc := NewExportService(env.users, &config.Config{
		Storage: config.StorageConfig{Type: "local", LocalPath: string([]byte{0})},
	})
	svc.now = func() time.Time { return fixedNow }

	// The download must come back even when the archive copy cannot be written.
	filename, body, err := svc.ExportUsers(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, filename)
	assert.NotEmpty(t, body)
}
