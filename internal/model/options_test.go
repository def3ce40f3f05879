package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMockOptions(t *testing.T) {
	doc := []byte(`
constructors:
  Ownable: ["0x01"]
  Vault: ["100", "true"]
scripted:
  rate:
    - value: 5
    - value: 7
      times: 3
`)

	opts, err := ParseMockOptions(doc)
	require.NoError(t, err)

	args, ok := opts.ConstructorArgs("Ownable")
	require.True(t, ok)
	assert.Equal(t, []string{"0x01"}, args)

	args, ok = opts.ConstructorArgs("Vault")
	require.True(t, ok)
	assert.Len(t, args, 2)

	script, ok := opts.Script("rate")
	require.True(t, ok)
	require.Len(t, script, 2)
	assert.Equal(t, ScriptEntry{Value: "5"}, script[0])
	assert.Equal(t, ScriptEntry{Value: "7", Times: 3}, script[1])
}

func TestParseMockOptionsScalarShorthand(t *testing.T) {
	doc := []byte(`
scripted:
  rate: [5, 7]
  name: ["alpha"]
`)

	opts, err := ParseMockOptions(doc)
	require.NoError(t, err)

	script, ok := opts.Script("rate")
	require.True(t, ok)
	assert.Equal(t, []ScriptEntry{{Value: "5"}, {Value: "7"}}, script)

	script, ok = opts.Script("name")
	require.True(t, ok)
	assert.Equal(t, []ScriptEntry{{Value: "alpha"}}, script)
}

func TestParseMockOptionsEmptyDocument(t *testing.T) {
	opts, err := ParseMockOptions(nil)
	require.NoError(t, err)

	_, ok := opts.ConstructorArgs("Ownable")
	assert.False(t, ok)

	_, ok = opts.Script("rate")
	assert.False(t, ok)
}

func TestParseMockOptionsRejectsMalformedYAML(t *testing.T) {
	_, err := ParseMockOptions([]byte("scripted:\n\t- nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse mock options")
}

func TestScriptIgnoresEmptyName(t *testing.T) {
	opts := MockOptions{
		Scripted: map[string][]ScriptEntry{"": {{Value: "1"}}},
	}

	// Fallback and receive functions have no name; a blank key must never
	// script them.
	_, ok := opts.Script("")
	assert.False(t, ok)
}

func TestErrorMessages(t *testing.T) {
	notFound := &ContractNotFoundError{Path: "Token.sol", Contract: "Token"}
	assert.Equal(t, `contract "Token" not found in Token.sol`, notFound.Error())

	pathOnly := &ContractNotFoundError{Path: "Missing.sol"}
	assert.Equal(t, "no contracts found in Missing.sol", pathOnly.Error())

	resolution := &ScopeResolutionError{Path: "Token.sol", Contract: "Token", Missing: "Ownable"}
	assert.Contains(t, resolution.Error(), `"Ownable"`)
	assert.Contains(t, resolution.Error(), "missing import?")

	missingArgs := &MissingConstructorArgsError{Contract: "Token", Ancestor: "Ownable", ParamCount: 2}
	assert.Contains(t, missingArgs.Error(), "takes 2 argument(s)")
}
