package testutil

import (
	"os"

	"github.com/stretchr/testify/mock"

	"artifact-pruner/internal/core/domain"
)

// MockFileSystem is a mock of ports.FileSystem.
type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) ListDir(dir string) ([]string, error) {
	args := m.Called(dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(os.FileInfo), args.Error(1)
}

func (m *MockFileSystem) Lstat(path string) (os.FileInfo, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(os.FileInfo), args.Error(1)
}

func (m *MockFileSystem) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// MockReporter is a mock of ports.Reporter.
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) DirectoryStarted(dir string) {
	m.Called(dir)
}

func (m *MockReporter) GroupReported(dir string, group domain.GroupReport) {
	m.Called(dir, group)
}

func (m *MockReporter) DirectoryFinished(report domain.DirectoryReport) {
	m.Called(report)
}

func (m *MockReporter) RunFinished(summary domain.RunSummary) {
	m.Called(summary)
}

// NewQuietReporter returns a MockReporter accepting any call.
func NewQuietReporter() *MockReporter {
	r := new(MockReporter)
	r.On("DirectoryStarted", mock.Anything).Maybe()
	r.On("GroupReported", mock.Anything, mock.Anything).Maybe()
	r.On("DirectoryFinished", mock.Anything).Maybe()
	r.On("RunFinished", mock.Anything).Maybe()
	return r
}
