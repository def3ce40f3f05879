package adapter

import (
	"os"

	m "solmock.dev/pkg/solmock/internal/model"
)

// SourceFSAdapter abstracts file system access so commands can be tested
// without touching disk.
type SourceFSAdapter interface {
	ReadFile(path m.Path) ([]byte, error)
	WriteFile(path m.Path, data []byte) error
	Exists(path m.Path) bool
}

// LocalSourceFSAdapter provides a concrete SourceFSAdapter backed by os.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile reads the file at path.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes data to path, creating or truncating it.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, data []byte) error {
	return os.WriteFile(string(path), data, 0o644)
}

// Exists reports whether path exists.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}
