package adapter

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "solmock.dev/pkg/solmock/internal/model"
)

func readTokenArtifact(t *testing.T) []byte {
	t.Helper()

	data, err := os.ReadFile("../../examples/token/token.ast.json")
	require.NoError(t, err)

	return data
}

func TestParseCombinedJSONTokenArtifact(t *testing.T) {
	units, err := ParseCombinedJSON(readTokenArtifact(t))
	require.NoError(t, err)
	require.Len(t, units, 2)

	token, ok := units["examples/token/Token.sol"]
	require.True(t, ok)
	assert.Equal(t, m.Path("examples/token/Token.sol"), token.AbsolutePath)
	require.Len(t, token.Contracts, 1)
	assert.Equal(t, "Token", token.Contracts[0].Name)
	require.Len(t, token.Imports, 1)
	assert.Equal(t, m.Path("examples/token/Ownable.sol"), token.Imports[0].AbsolutePath)

	ownable, ok := units["examples/token/Ownable.sol"]
	require.True(t, ok)
	require.Len(t, ownable.Contracts, 1)
	require.NotNil(t, ownable.Contracts[0].Constructor())
}

func TestParseCombinedJSONLegacyKey(t *testing.T) {
	doc := `{"sources": {"A.sol": {"ast": {"nodeType": "SourceUnit", "absolutePath": "A.sol", "nodes": []}}}}`

	units, err := ParseCombinedJSON([]byte(doc))
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, m.Path("A.sol"), units["A.sol"].AbsolutePath)
}

func TestParseCombinedJSONFallsBackToSourceKey(t *testing.T) {
	doc := `{"sources": {"A.sol": {"AST": {"nodeType": "SourceUnit", "nodes": []}}}}`

	units, err := ParseCombinedJSON([]byte(doc))
	require.NoError(t, err)

	// The unit carries no absolutePath of its own, so the sources key wins.
	assert.Equal(t, m.Path("A.sol"), units["A.sol"].AbsolutePath)
}

func TestParseCombinedJSONNoSources(t *testing.T) {
	_, err := ParseCombinedJSON([]byte(`{"sources": {}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sources")
}

func TestParseCombinedJSONMissingAST(t *testing.T) {
	_, err := ParseCombinedJSON([]byte(`{"sources": {"A.sol": {}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no AST")
}

func TestNewLocalSolcAdapterDefaultsBinary(t *testing.T) {
	adapter := NewLocalSolcAdapter("")
	assert.Equal(t, "solc", adapter.binary)

	adapter = NewLocalSolcAdapter("/opt/solc/solc-0.8.24")
	assert.Equal(t, "/opt/solc/solc-0.8.24", adapter.binary)
}
