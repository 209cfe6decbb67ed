package services

import (
	"strings"

	"artifact-pruner/internal/core/domain"
)

// NormalizeExtension strips a leading dot so "rlib" and ".rlib" configure the same suffix.
func NormalizeExtension(ext string) string {
	return strings.TrimPrefix(strings.TrimSpace(ext), ".")
}

// SplitArtifactName returns the stem of name when its final extension equals ext.
// The comparison is case-sensitive and only the last dot counts, so
// "libfoo-1.so.rlib" has stem "libfoo-1.so".
func SplitArtifactName(name, ext string) (string, bool) {
	ext = NormalizeExtension(ext)
	if ext == "" {
		return "", false
	}
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 || name[dot+1:] != ext {
		return "", false
	}
	return name[:dot], true
}

// LibraryKeyFromStem drops the last hyphen-delimited segment of stem.
// Stems without a hyphen have no key.
func LibraryKeyFromStem(stem string) (domain.LibraryKey, bool) {
	i := strings.LastIndexByte(stem, '-')
	if i < 0 {
		return "", false
	}
	return domain.LibraryKey(stem[:i]), true
}
