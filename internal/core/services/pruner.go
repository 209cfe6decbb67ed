package services

import (
	"fmt"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"artifact-pruner/internal/core/domain"
	ports "artifact-pruner/internal/core/ports/output"
)

// PrunerOptions configures which files are artifacts and how old a
// duplicate may get before its group is pruned.
type PrunerOptions struct {
	Extension string
	Tolerance time.Duration
}

// PrunerService deletes superseded artifact builds inside one marker directory
type PrunerService struct {
	fs       ports.FileSystem
	reporter ports.Reporter
	logger   log.FieldLogger
	opts     PrunerOptions
}

// NewPrunerService creates a new pruner service
func NewPrunerService(fs ports.FileSystem, reporter ports.Reporter, logger log.FieldLogger, opts PrunerOptions) *PrunerService {
	opts.Extension = NormalizeExtension(opts.Extension)
	return &PrunerService{
		fs:       fs,
		reporter: reporter,
		logger:   logger,
		opts:     opts,
	}
}

// WithLogger returns a copy of the service that logs through logger.
func (s *PrunerService) WithLogger(logger log.FieldLogger) *PrunerService {
	c := *s
	c.logger = logger
	return &c
}

// CollectArtifacts lists dir and returns every file carrying the artifact
// extension. Entries that cannot be stat'ed are skipped with a warning and
// counted in the returned skip count.
func (s *PrunerService) CollectArtifacts(dir string) ([]domain.ArtifactFile, int, error) {
	names, err := s.fs.ListDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", dir, err)
	}

	var (
		files   []domain.ArtifactFile
		skipped int
	)
	for _, name := range names {
		stem, ok := SplitArtifactName(name, s.opts.Extension)
		if !ok {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := s.fs.Stat(path)
		if err != nil {
			s.logger.WithFields(log.Fields{
				"path":  path,
				"error": err,
			}).Warn("could not read artifact metadata, skipping")
			skipped++
			continue
		}
		if info.IsDir() {
			continue
		}

		files = append(files, domain.ArtifactFile{
			Path:      path,
			Name:      name,
			Stem:      stem,
			Extension: s.opts.Extension,
			ModTime:   info.ModTime(),
			Size:      info.Size(),
		})
	}

	return files, skipped, nil
}

// PruneDirectory groups the artifacts of dir by library and applies the
// deletion policy to every group. Failures are logged and collected in the
// report; they never stop the remaining groups from being processed.
func (s *PrunerService) PruneDirectory(dir string) domain.DirectoryReport {
	report := domain.DirectoryReport{Dir: dir}
	s.reporter.DirectoryStarted(dir)
	defer func() { s.reporter.DirectoryFinished(report) }()

	files, skipped, err := s.CollectArtifacts(dir)
	report.Skipped = skipped
	if err != nil {
		s.logger.WithFields(log.Fields{
			"dir":   dir,
			"error": err,
		}).Warn("could not list marker directory")
		report.Err = err
		return report
	}

	for _, group := range GroupArtifacts(files) {
		decision := PlanDeletions(group, s.opts.Tolerance)
		gr := s.apply(decision)
		for _, f := range gr.Failed {
			report.Err = multierr.Append(report.Err, fmt.Errorf("delete %s: %w", f.File.Path, f.Err))
		}
		report.Groups = append(report.Groups, gr)
		s.reporter.GroupReported(dir, gr)
	}

	return report
}

func (s *PrunerService) apply(decision domain.PruneDecision) domain.GroupReport {
	gr := domain.GroupReport{
		Key:     decision.Key,
		Outcome: decision.Outcome,
		Reason:  decision.Reason,
	}
	if !decision.HasDeletions() {
		return gr
	}

	s.logger.WithFields(log.Fields{
		"library": decision.Key,
		"count":   len(decision.Delete),
	}).Debug("pruning library")

	for _, f := range decision.Delete {
		if err := s.fs.Remove(f.Path); err != nil {
			s.logger.WithFields(log.Fields{
				"path":  f.Path,
				"error": err,
			}).Error("unable to delete artifact")
			gr.Failed = append(gr.Failed, domain.DeleteFailure{File: f, Err: err})
			continue
		}
		gr.Removed = append(gr.Removed, f)
		gr.ReclaimedBytes += f.Size
	}

	return gr
}
