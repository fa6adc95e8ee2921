package scheduler

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/analysishub/analysishub/internal/config"
	"github.com/analysishub/analysishub/internal/uploads"
)

// Logos normally disappear right after a report is generated; anything older
// than this was orphaned by a failed submission.
const uploadMaxAge = time.Hour

// RegisterUploadJanitor schedules the hourly sweep of orphaned logo uploads.
func RegisterUploadJanitor(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("upload janitor requires config")
	}

	jobName := "upload_janitor"
	cronExpr := "0 * * * *"
	jobLogger := log.With().
		Str("component", "upload_janitor_job").
		Str("job_name", jobName).
		Str("cron", cronExpr).
		Logger()

	err := AddJob(jobName, cronExpr, func() {
		removed, err := uploads.PruneStale(cfg.Storage.UploadsDir, uploadMaxAge)
		if err != nil {
			jobLogger.Error().Err(err).Msg("Failed to prune stale uploads")
			return
		}
		if removed > 0 {
			jobLogger.Info().Int("removed", removed).Msg("Pruned stale uploads")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register upload janitor: %w", err)
	}
	return nil
}
