package domain

import "time"

// ArtifactFile is a compiled library artifact found in a marker directory.
// Path doubles as its identity when deciding what to delete.
type ArtifactFile struct {
	Path      string    `json:"path"`
	Name      string    `json:"name"`
	Stem      string    `json:"stem"`
	Extension string    `json:"extension"`
	ModTime   time.Time `json:"mod_time"`
	Size      int64     `json:"size"`
}

// LibraryKey identifies one logical library. Artifacts sharing a key are
// different builds of the same library.
type LibraryKey string

func (k LibraryKey) String() string {
	return string(k)
}

// LibraryGroup holds every build of one library found in a single marker
// directory, ordered oldest first.
type LibraryGroup struct {
	Key   LibraryKey     `json:"key"`
	Files []ArtifactFile `json:"files"`
}

func (g LibraryGroup) Len() int {
	return len(g.Files)
}

// Latest returns the most recently modified artifact of the group.
func (g LibraryGroup) Latest() (ArtifactFile, bool) {
	if len(g.Files) == 0 {
		return ArtifactFile{}, false
	}
	return g.Files[len(g.Files)-1], true
}
