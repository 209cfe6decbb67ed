package console

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"artifact-pruner/internal/core/domain"
	ports "artifact-pruner/internal/core/ports/output"
)

type reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter that writes one line per event to out
func NewReporter(out io.Writer) ports.Reporter {
	return &reporter{out: out}
}

func (r *reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *reporter) DirectoryStarted(dir string) {
	r.printf("Scanning %s ...", dir)
}

func (r *reporter) GroupReported(dir string, g domain.GroupReport) {
	switch g.Outcome {
	case domain.OutcomeUnique:
		r.printf("  kept    %s (no duplicates)", g.Key)
	case domain.OutcomeRetained:
		r.printf("  kept    %s (%s)", g.Key, g.Reason)
	case domain.OutcomePruned:
		line := fmt.Sprintf("  pruned  %s: removed %d, reclaimed %s", g.Key, len(g.Removed), humanize.IBytes(uint64(g.ReclaimedBytes)))
		if len(g.Failed) > 0 {
			line += fmt.Sprintf(", %d failed", len(g.Failed))
		}
		r.printf("%s", line)
		for _, f := range g.Failed {
			r.printf("    unable to delete %s: %v", f.File.Path, f.Err)
		}
	}
}

func (r *reporter) DirectoryFinished(rep domain.DirectoryReport) {
	if rep.Err != nil && len(rep.Groups) == 0 {
		r.printf("Skipped %s: %v", rep.Dir, rep.Err)
		return
	}
	r.printf("Done %s: %d groups, %d removed, %s reclaimed",
		rep.Dir, len(rep.Groups), rep.Removed(), humanize.IBytes(uint64(rep.ReclaimedBytes())))
}

func (r *reporter) RunFinished(s domain.RunSummary) {
	r.printf("Pruned %d artifacts in %d directories under %s, reclaimed %s (%d failed, %d skipped) in %s",
		s.Removed, s.Directories, s.Root, humanize.IBytes(uint64(s.ReclaimedBytes)), s.Failed, s.Skipped,
		s.Duration.Round(time.Millisecond))
}
