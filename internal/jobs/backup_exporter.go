package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"interviewmate/internal/config"
	"interviewmate/internal/models"
	"interviewmate/internal/utils"
)

// Exporter builds the export document for the given session (nil when
// nobody is logged in).
type Exporter interface {
	Export(ctx context.Context, session *models.UserSession) models.ExportDocument
}

// SessionSource returns the logged-in user, if any.
type SessionSource interface {
	Current(ctx context.Context) (*models.UserSession, error)
}

// BackupJob periodically writes the export document to disk.
type BackupJob struct {
	exporter Exporter
	sessions SessionSource
	config   config.BackupConfig
	cron     *cron.Cron
	logger   *zap.Logger
	now      func() time.Time
}

func NewBackupJob(exporter Exporter, sessions SessionSource, cfg config.BackupConfig, logger *zap.Logger) *BackupJob {
	return &BackupJob{
		exporter: exporter,
		sessions: sessions,
		config:   cfg,
		cron:     cron.New(),
		logger:   utils.OrNop(logger),
		now:      time.Now,
	}
}

// Start schedules RunBackup. A disabled job is a no-op.
func (j *BackupJob) Start() error {
	if !j.config.Enabled {
		j.logger.Info("backup job is disabled, skipping scheduler")
		return nil
	}

	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		if _, err := j.RunBackup(context.Background()); err != nil {
			j.logger.Error("backup job failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule backup job: %w", err)
	}

	j.cron.Start()
	j.logger.Info("backup job started", zap.String("schedule", j.config.Schedule))
	return nil
}

// Stop waits for a running backup to finish.
func (j *BackupJob) Stop() {
	if j.cron != nil {
		<-j.cron.Stop().Done()
		j.logger.Info("backup job stopped")
	}
}

// RunBackup writes one export file and returns its path.
func (j *BackupJob) RunBackup(ctx context.Context) (string, error) {
	// a logged-out backup still carries the stored profile and interviews
	user, _ := j.sessions.Current(ctx)
	doc := j.exporter.Export(ctx, user)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}

	if err := os.MkdirAll(j.config.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	filename := fmt.Sprintf("interviewmate_backup_%s.json", j.now().Format("20060102_150405"))
	path := filepath.Join(j.config.Dir, filename)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}

	j.logger.Info("backup written",
		zap.String("path", path),
		zap.Int("interviews", len(doc.Interviews)))
	return path, nil
}
