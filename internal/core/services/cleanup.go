package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"artifact-pruner/internal/core/domain"
	ports "artifact-pruner/internal/core/ports/output"
)

// CleanupService walks a build tree and prunes every marker directory it finds
type CleanupService struct {
	walker   *WalkerService
	pruner   *PrunerService
	reporter ports.Reporter
	logger   log.FieldLogger
	now      func() time.Time
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(walker *WalkerService, pruner *PrunerService, reporter ports.Reporter, logger log.FieldLogger) *CleanupService {
	return &CleanupService{
		walker:   walker,
		pruner:   pruner,
		reporter: reporter,
		logger:   logger,
		now:      time.Now,
	}
}

// Run prunes every marker directory under root, one directory at a time.
// The returned error is only set when root cannot be read or ctx is done;
// per-file failures are collected in RunSummary.Err. An interrupted run
// still reports what it did before stopping.
func (s *CleanupService) Run(ctx context.Context, root string) (*domain.RunSummary, error) {
	summary := &domain.RunSummary{
		RunID:     uuid.New().String(),
		Root:      root,
		StartedAt: s.now(),
	}
	logger := s.logger.WithFields(log.Fields{
		"run_id": summary.RunID,
		"root":   root,
	})
	walker := s.walker.WithLogger(logger)
	pruner := s.pruner.WithLogger(logger)
	logger.Info("cleanup started")

	err := walker.Walk(ctx, root, func(dir string) {
		report := pruner.PruneDirectory(dir)
		summary.Directories++
		summary.Removed += report.Removed()
		summary.Failed += report.Failed()
		summary.Skipped += report.Skipped
		summary.ReclaimedBytes += report.ReclaimedBytes()
		summary.Err = multierr.Append(summary.Err, report.Err)
	})
	summary.Duration = s.now().Sub(summary.StartedAt)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.reporter.RunFinished(*summary)
		}
		logger.WithError(err).Error("cleanup aborted")
		return summary, err
	}

	s.reporter.RunFinished(*summary)
	logger.WithFields(log.Fields{
		"directories": summary.Directories,
		"removed":     summary.Removed,
		"failed":      summary.Failed,
	}).Info("cleanup finished")

	return summary, nil
}
