package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// BaseTime is a fixed reference time for artifact fixtures.
var BaseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// FileInfo is a static os.FileInfo for mocked filesystems.
type FileInfo struct {
	FileName    string
	FileSize    int64
	FileModTime time.Time
	Dir         bool
}

func (f FileInfo) Name() string       { return f.FileName }
func (f FileInfo) Size() int64        { return f.FileSize }
func (f FileInfo) ModTime() time.Time { return f.FileModTime }
func (f FileInfo) IsDir() bool        { return f.Dir }
func (f FileInfo) Sys() any           { return nil }

func (f FileInfo) Mode() os.FileMode {
	if f.Dir {
		return os.ModeDir | 0o755
	}
	return 0o644
}

// WriteArtifact creates path on fs with size bytes of content and the given
// modification time, creating parent directories as needed.
func WriteArtifact(t *testing.T, fs afero.Fs, path string, size int, modTime time.Time) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, make([]byte, size), 0o644))
	require.NoError(t, fs.Chtimes(path, modTime, modTime))
}

// Exists reports whether path exists on fs.
func Exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	return ok
}
