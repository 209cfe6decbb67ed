package services

import (
	"context"
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"artifact-pruner/internal/core/domain"
	ports "artifact-pruner/internal/core/ports/output"
)

// WalkerService discovers marker directories below a root
type WalkerService struct {
	fs     ports.FileSystem
	logger log.FieldLogger
	marker string
}

// NewWalkerService creates a new walker service
func NewWalkerService(fs ports.FileSystem, logger log.FieldLogger, marker string) *WalkerService {
	return &WalkerService{fs: fs, logger: logger, marker: marker}
}

// WithLogger returns a copy of the service that logs through logger.
func (s *WalkerService) WithLogger(logger log.FieldLogger) *WalkerService {
	c := *s
	c.logger = logger
	return &c
}

// IsMarker reports whether path names a marker directory.
func (s *WalkerService) IsMarker(path string) bool {
	return filepath.Base(filepath.Clean(path)) == s.marker
}

// Walk calls visit for every marker directory under root, depth first in
// lexical order. Marker directories are not descended into. visit returns
// before the walk moves on, so callers may mutate a marker directory freely.
//
// Only a root that cannot be read is an error; unreadable directories below
// it are logged and skipped. A root that is not a directory yields nothing.
// Symlinks are followed for root only; linked directories below it are
// skipped so link cycles cannot loop the walk.
func (s *WalkerService) Walk(ctx context.Context, root string, visit func(dir string)) error {
	info, err := s.fs.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRootUnreadable, root, err)
	}
	if !info.IsDir() {
		s.logger.WithField("root", root).Warn("root is not a directory, nothing to scan")
		return nil
	}

	if s.IsMarker(root) {
		visit(root)
		return nil
	}

	names, err := s.fs.ListDir(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRootUnreadable, root, err)
	}

	return s.descend(ctx, root, names, visit)
}

func (s *WalkerService) walk(ctx context.Context, dir string, visit func(dir string)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.IsMarker(dir) {
		visit(dir)
		return nil
	}

	names, err := s.fs.ListDir(dir)
	if err != nil {
		s.logger.WithFields(log.Fields{
			"dir":   dir,
			"error": err,
		}).Warn("could not evaluate directory")
		return nil
	}

	return s.descend(ctx, dir, names, visit)
}

func (s *WalkerService) descend(ctx context.Context, dir string, names []string, visit func(dir string)) error {
	for _, name := range names {
		child := filepath.Join(dir, name)
		info, err := s.fs.Lstat(child)
		if err != nil {
			s.logger.WithFields(log.Fields{
				"path":  child,
				"error": err,
			}).Warn("could not evaluate entry")
			continue
		}
		if !info.IsDir() {
			continue
		}
		if err := s.walk(ctx, child, visit); err != nil {
			return err
		}
	}
	return nil
}
