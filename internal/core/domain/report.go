package domain

import "time"

// DeleteFailure records an artifact that could not be removed.
type DeleteFailure struct {
	File ArtifactFile
	Err  error
}

// GroupReport is what happened to one library group after its decision was applied.
type GroupReport struct {
	Key            LibraryKey
	Outcome        GroupOutcome
	Removed        []ArtifactFile
	Failed         []DeleteFailure
	Reason         string
	ReclaimedBytes int64
}

// DirectoryReport collects the group reports of one marker directory.
// Err aggregates every non-fatal failure seen while pruning it.
type DirectoryReport struct {
	Dir     string
	Groups  []GroupReport
	Skipped int
	Err     error
}

func (r DirectoryReport) Removed() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Removed)
	}
	return n
}

func (r DirectoryReport) Failed() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Failed)
	}
	return n
}

func (r DirectoryReport) ReclaimedBytes() int64 {
	var n int64
	for _, g := range r.Groups {
		n += g.ReclaimedBytes
	}
	return n
}

// RunSummary totals a full cleanup run over one root.
type RunSummary struct {
	RunID          string
	Root           string
	StartedAt      time.Time
	Duration       time.Duration
	Directories    int
	Removed        int
	Failed         int
	Skipped        int
	ReclaimedBytes int64
	Err            error
}
