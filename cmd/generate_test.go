package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "solmock.dev/pkg/solmock/internal/model"
)

func TestGenerateFlags(t *testing.T) {
	options := generateCmd.Flags().Lookup(optionsFlagName)
	require.NotNil(t, options)
	assert.Equal(t, "m", options.Shorthand)

	parallel := generateCmd.Flags().Lookup(parallelFlagName)
	require.NotNil(t, parallel)
	assert.Equal(t, "p", parallel.Shorthand)
	assert.Equal(t, "1", parallel.DefValue)

	for _, name := range []string{"all", "diff", "stdout"} {
		assert.NotNil(t, generateCmd.Flags().Lookup(name), "missing flag %q", name)
	}
}

func TestRunGenerateFromArtifactToStdout(t *testing.T) {
	prevStdout, prevOptions := generateStdoutFlag, generateOptionsFlag
	generateStdoutFlag = true
	generateOptionsFlag = "../examples/token/mocks.yaml"

	t.Cleanup(func() {
		generateStdoutFlag, generateOptionsFlag = prevStdout, prevOptions
	})

	cmd := &cobra.Command{}

	var out bytes.Buffer
	cmd.SetOut(&out)

	err := runGenerate(cmd, "../examples/token/token.ast.json", []string{"Token"})
	require.NoError(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, "contract TokenMock is Token")
	assert.Contains(t, rendered, "Ownable(0x0000000000000000000000000000000000000001)")
	assert.Contains(t, rendered, "function exposedSupply() public view returns (uint256)")
	assert.Contains(t, rendered, "contract TokenMockNonAbstractForcer")
}

func TestRunGenerateUnknownContract(t *testing.T) {
	prevStdout := generateStdoutFlag
	generateStdoutFlag = true

	t.Cleanup(func() { generateStdoutFlag = prevStdout })

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runGenerate(cmd, "../examples/token/token.ast.json", []string{"Missing"})
	require.Error(t, err)
}

func TestResolveSourcePath(t *testing.T) {
	catalog := m.SourceCatalog{
		"a/Token.sol":   &m.SourceEntry{Contracts: map[string]*m.ContractDefinition{"Token": {Name: "Token"}}},
		"a/Ownable.sol": &m.SourceEntry{Contracts: map[string]*m.ContractDefinition{"Ownable": {Name: "Ownable"}}},
	}

	// A direct catalog key resolves to itself.
	path, err := resolveSourcePath(catalog, "a/Token.sol", nil)
	require.NoError(t, err)
	assert.Equal(t, m.Path("a/Token.sol"), path)

	// An artifact path resolves through the requested contract.
	path, err = resolveSourcePath(catalog, "build/combined.json", []string{"Ownable"})
	require.NoError(t, err)
	assert.Equal(t, m.Path("a/Ownable.sol"), path)

	// Ambiguous without a contract name.
	_, err = resolveSourcePath(catalog, "build/combined.json", nil)
	require.Error(t, err)

	// A single-source catalog never needs disambiguation.
	single := m.SourceCatalog{"only/Token.sol": &m.SourceEntry{}}

	path, err = resolveSourcePath(single, "build/combined.json", nil)
	require.NoError(t, err)
	assert.Equal(t, m.Path("only/Token.sol"), path)
}

func TestMockableNames(t *testing.T) {
	assert.Nil(t, mockableNames(nil))

	entry := &m.SourceEntry{Contracts: map[string]*m.ContractDefinition{
		"Token":   {Name: "Token", Kind: m.KindContract},
		"IQuoter": {Name: "IQuoter", Kind: m.KindInterface},
		"Math":    {Name: "Math", Kind: m.KindLibrary},
	}}

	assert.Equal(t, []string{"IQuoter", "Token"}, mockableNames(entry))
}
