package jobs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"interviewmate/internal/config"
	"interviewmate/internal/models"
	"interviewmate/internal/repositories"
	"interviewmate/internal/session"
	"interviewmate/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	sessions *session.Manager
	data     *repositories.DataRepository
	ivs      *repositories.InterviewRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	s := store.NewMemoryStore()
	logger := zap.NewNop()
	ach := repositories.NewAchievementRepository(s, logger)
	ivs := repositories.NewInterviewRepository(s, ach, logger)
	settings := repositories.NewSettingsRepository(s, logger)
	return fixture{
		sessions: session.NewManager(s, ivs, config.AuthConfig{JWTSecret: "test"}, logger),
		data:     repositories.NewDataRepository(s, ivs, settings, logger),
		ivs:      ivs,
	}
}

func TestRunBackup_WritesExportDocument(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.sessions.Login(ctx, models.LoginRequest{Email: "lin@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = f.ivs.Create(ctx, models.CreateInterviewRequest{Role: "DBA"}, "1")
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "backups")
	job := NewBackupJob(f.data, f.sessions, config.BackupConfig{Enabled: true, Dir: dir}, nil)
	job.now = func() time.Time { return time.Date(2024, time.March, 5, 2, 0, 0, 0, time.UTC) }

	path, err := job.RunBackup(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "interviewmate_backup_20240305_020000.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc models.ExportDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "lin@example.com", doc.Profile.Email)
	assert.Len(t, doc.Interviews, 1)
}

func TestRunBackup_LoggedOut(t *testing.T) {
	f := newFixture(t)
	job := NewBackupJob(f.data, f.sessions, config.BackupConfig{Dir: t.TempDir()}, nil)

	path, err := job.RunBackup(context.Background())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc models.ExportDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Empty(t, doc.Profile.Email)
	assert.Empty(t, doc.Interviews)
}

func TestStart(t *testing.T) {
	f := newFixture(t)

	disabled := NewBackupJob(f.data, f.sessions, config.BackupConfig{Schedule: "not a schedule"}, nil)
	assert.NoError(t, disabled.Start())

	invalid := NewBackupJob(f.data, f.sessions, config.BackupConfig{Enabled: true, Schedule: "not a schedule"}, nil)
	assert.Error(t, invalid.Start())

	valid := NewBackupJob(f.data, f.sessions, config.BackupConfig{Enabled: true, Schedule: "0 2 * * *", Dir: t.TempDir()}, nil)
	require.NoError(t, valid.Start())
	valid.Stop()
}
