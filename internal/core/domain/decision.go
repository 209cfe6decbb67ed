package domain

type GroupOutcome string

const (
	// OutcomeUnique means the group had a single build and was left alone.
	OutcomeUnique GroupOutcome = "KEPT"
	// OutcomePruned means superseded builds were selected for deletion.
	OutcomePruned GroupOutcome = "PRUNED"
	// OutcomeRetained means duplicates exist but all are within tolerance of the newest.
	OutcomeRetained GroupOutcome = "RETAINED"
)

// PruneDecision is the outcome of the deletion policy for one group.
type PruneDecision struct {
	Key     LibraryKey     `json:"key"`
	Outcome GroupOutcome   `json:"outcome"`
	Delete  []ArtifactFile `json:"delete"`
	Keep    []ArtifactFile `json:"keep"`
	Reason  string         `json:"reason,omitempty"`
}

func (d PruneDecision) HasDeletions() bool {
	return len(d.Delete) > 0
}
