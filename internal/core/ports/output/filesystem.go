package ports

import "os"

// FileSystem defines the filesystem operations the pruner relies on
type FileSystem interface {
	// ListDir returns the base names of the entries of dir, sorted
	ListDir(dir string) ([]string, error)

	// Stat returns file metadata, following symlinks
	Stat(path string) (os.FileInfo, error)

	// Lstat returns file metadata without following a trailing symlink when
	// the underlying filesystem can tell the difference
	Lstat(path string) (os.FileInfo, error)

	// Remove deletes a single file
	Remove(path string) error
}
