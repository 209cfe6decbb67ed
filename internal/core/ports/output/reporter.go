package ports

import "artifact-pruner/internal/core/domain"

// Reporter receives the human-readable progress of a cleanup run
type Reporter interface {
	// DirectoryStarted is called before a marker directory is pruned
	DirectoryStarted(dir string)

	// GroupReported is called once per library group after its decision was applied
	GroupReported(dir string, group domain.GroupReport)

	// DirectoryFinished is called after every group of dir was reported
	DirectoryFinished(report domain.DirectoryReport)

	// RunFinished is called once at the end of a run
	RunFinished(summary domain.RunSummary)
}
