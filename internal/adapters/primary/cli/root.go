package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"artifact-pruner/internal/adapters/secondary/console"
	"artifact-pruner/internal/adapters/secondary/localfs"
	"artifact-pruner/internal/config"
	"artifact-pruner/internal/core/services"
)

// Exit codes
const (
	ExitOK         = 0
	ExitFatal      = 1
	ExitUsageError = 2
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// fatalError marks errors raised after flag parsing succeeded.
type fatalError struct{ err error }

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

// Options wires the command to its environment. Zero values fall back to the
// host filesystem and the process's standard streams.
type Options struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
}

// NewRootCommand builds the pruner command.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cmd := &cobra.Command{
		Use:           "pruner",
		Short:         "Delete stale builds of compiled libraries from a build tree",
		Long:          "Scans a build output tree for dependency directories and deletes superseded builds of the same library, keeping the most recent one.",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return &fatalError{err: err}
			}
			if err := run(cmd.Context(), cfg, opts); err != nil {
				return &fatalError{err: err}
			}
			return nil
		},
	}
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)
	config.RegisterFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context, cfg *config.Config, opts Options) error {
	logger := newLogger(cfg, opts.Stderr)

	fs := localfs.New(opts.Fs)
	reporter := console.NewReporter(opts.Stdout)

	walker := services.NewWalkerService(fs, logger, cfg.Prune.Marker)
	pruner := services.NewPrunerService(fs, reporter, logger, services.PrunerOptions{
		Extension: cfg.Prune.Extension,
		Tolerance: cfg.Prune.Tolerance,
	})
	cleanup := services.NewCleanupService(walker, pruner, reporter, logger)

	summary, err := cleanup.Run(ctx, cfg.Prune.Target)
	if err != nil {
		return err
	}
	if summary.Err != nil {
		logger.WithField("failed", summary.Failed).Warn("some artifacts could not be removed")
	}
	return nil
}

// Execute runs the command with args and returns the process exit code.
func Execute(ctx context.Context, args []string, opts Options) int {
	cmd := NewRootCommand(opts)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	stderr := cmd.ErrOrStderr()
	var fe *fatalError
	if errors.As(err, &fe) {
		fmt.Fprintln(stderr, "Error:", fe)
		return ExitFatal
	}
	fmt.Fprintln(stderr, "Error:", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return ExitUsageError
}
