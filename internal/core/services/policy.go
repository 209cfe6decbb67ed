package services

import (
	"fmt"
	"time"

	"artifact-pruner/internal/core/domain"
)

// PlanDeletions decides which builds of a group to delete.
//
// With a zero tolerance every build but the newest is deleted. With a
// positive tolerance nothing happens unless at least one build lags the
// newest by more than the tolerance; in that case every build older than the
// newest is deleted, including builds that are individually within the
// tolerance. Builds with the newest timestamp are never deleted in that
// branch. A build dated after the newest never counts as stale.
//
// PlanDeletions never touches the filesystem.
func PlanDeletions(group domain.LibraryGroup, tolerance time.Duration) domain.PruneDecision {
	decision := domain.PruneDecision{Key: group.Key}

	latest, ok := group.Latest()
	if !ok || group.Len() < 2 {
		decision.Outcome = domain.OutcomeUnique
		decision.Keep = append(decision.Keep, group.Files...)
		return decision
	}

	if tolerance <= 0 {
		n := group.Len()
		decision.Outcome = domain.OutcomePruned
		decision.Delete = append(decision.Delete, group.Files[:n-1]...)
		decision.Keep = append(decision.Keep, latest)
		return decision
	}

	stale := false
	for _, f := range group.Files {
		if latest.ModTime.Sub(f.ModTime) > tolerance {
			stale = true
			break
		}
	}

	if !stale {
		decision.Outcome = domain.OutcomeRetained
		decision.Keep = append(decision.Keep, group.Files...)
		decision.Reason = fmt.Sprintf("%d duplicates within %s of newest", group.Len(), tolerance)
		return decision
	}

	decision.Outcome = domain.OutcomePruned
	for _, f := range group.Files {
		if latest.ModTime.Sub(f.ModTime) > 0 {
			decision.Delete = append(decision.Delete, f)
		} else {
			decision.Keep = append(decision.Keep, f)
		}
	}
	return decision
}
