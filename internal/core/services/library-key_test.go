package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"artifact-pruner/internal/core/domain"
)

func TestLibraryKeyFromStem(t *testing.T) {
	tests := []struct {
		stem    string
		wantKey domain.LibraryKey
		wantOK  bool
	}{
		{"foo-bar-abcdef123", "foo-bar", true},
		{"libserde-1a2b3c", "libserde", true},
		{"libserde_json-0f9e", "libserde_json", true},
		{"nohyphen", "", false},
		{"", "", false},
		{"trailing-", "trailing", true},
		{"-leading", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			key, ok := LibraryKeyFromStem(tt.stem)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestSplitArtifactName(t *testing.T) {
	tests := []struct {
		name     string
		ext      string
		wantStem string
		wantOK   bool
	}{
		{"libfoo-abc.rlib", "rlib", "libfoo-abc", true},
		{"libfoo-abc.rlib", ".rlib", "libfoo-abc", true},
		{"libfoo-abc.rmeta", "rlib", "", false},
		{"libfoo-abc.RLIB", "rlib", "", false},
		{"libfoo-abc.so.rlib", "rlib", "libfoo-abc.so", true},
		{"libfoo-abc.rlib.bak", "rlib", "", false},
		{"rlib", "rlib", "", false},
		{"libfoo-abc.rlib", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.ext, func(t *testing.T) {
			stem, ok := SplitArtifactName(tt.name, tt.ext)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStem, stem)
		})
	}
}

func TestNormalizeExtension(t *testing.T) {
	assert.Equal(t, "rlib", NormalizeExtension(".rlib"))
	assert.Equal(t, "rlib", NormalizeExtension(" rlib "))
	assert.Equal(t, "", NormalizeExtension(""))
}
