package localfs

import (
	"os"
	"sort"

	"github.com/spf13/afero"

	ports "artifact-pruner/internal/core/ports/output"
)

type fileSystem struct {
	fs afero.Fs
}

// New creates a FileSystem adapter on top of an afero filesystem
func New(fs afero.Fs) ports.FileSystem {
	return &fileSystem{fs: fs}
}

func (f *fileSystem) ListDir(dir string) ([]string, error) {
	d, err := f.fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (f *fileSystem) Stat(path string) (os.FileInfo, error) {
	return f.fs.Stat(path)
}

func (f *fileSystem) Lstat(path string) (os.FileInfo, error) {
	if l, ok := f.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return f.fs.Stat(path)
}

func (f *fileSystem) Remove(path string) error {
	return f.fs.Remove(path)
}
