package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "solmock.dev/pkg/solmock/internal/model"
)

func TestLocalSourceFSAdapterRoundTrip(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	target := m.Path(filepath.Join(t.TempDir(), "TokenMock.sol"))

	assert.False(t, fs.Exists(target))

	require.NoError(t, fs.WriteFile(target, []byte("contract TokenMock {}\n")))
	assert.True(t, fs.Exists(target))

	data, err := fs.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "contract TokenMock {}\n", string(data))
}

func TestLocalSourceFSAdapterReadMissing(t *testing.T) {
	fs := NewLocalSourceFSAdapter()

	_, err := fs.ReadFile(m.Path(filepath.Join(t.TempDir(), "missing.sol")))
	assert.Error(t, err)
}
