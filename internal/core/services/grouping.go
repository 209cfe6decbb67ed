package services

import (
	"sort"

	"artifact-pruner/internal/core/domain"
)

// GroupArtifacts buckets files by library key. Files within a group are
// ordered oldest first; equal timestamps keep their input order. Groups are
// returned sorted by key. Files without a key are dropped.
func GroupArtifacts(files []domain.ArtifactFile) []domain.LibraryGroup {
	index := make(map[domain.LibraryKey]int, len(files))
	var groups []domain.LibraryGroup

	for _, f := range files {
		key, ok := LibraryKeyFromStem(f.Stem)
		if !ok {
			continue
		}
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.LibraryGroup{Key: key, Files: make([]domain.ArtifactFile, 0, 2)})
		}
		groups[i].Files = append(groups[i].Files, f)
	}

	for i := range groups {
		members := groups[i].Files
		sort.SliceStable(members, func(a, b int) bool {
			return members[a].ModTime.Before(members[b].ModTime)
		})
	}

	sort.Slice(groups, func(a, b int) bool {
		return groups[a].Key < groups[b].Key
	})

	return groups
}
