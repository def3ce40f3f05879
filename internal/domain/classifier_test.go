package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "solmock.dev/pkg/solmock/internal/model"
)

func flattenToken(t *testing.T) (*m.ContractDefinition, FlattenResult) {
	t.Helper()

	token := newToken()

	res, err := Flatten(token, resolverFor(newOwnable()))
	require.NoError(t, err)

	return token, res
}

func TestClassifyConstructorsNeedingArgs(t *testing.T) {
	token, res := flattenToken(t)

	opts := m.MockOptions{
		Constructors: map[string][]string{"Ownable": {"0x0000000000000000000000000000000000000001"}},
	}

	cls, err := Classify(token, res, opts)
	require.NoError(t, err)

	require.Len(t, cls.Constructors, 1)
	assert.Equal(t, "Ownable", cls.Constructors[0].Contract)
	assert.Equal(t, []string{"0x0000000000000000000000000000000000000001"}, cls.Constructors[0].Args)
}

func TestClassifyIncludesTargetOwnConstructor(t *testing.T) {
	base := contract("Base", nil)
	target := contract("Target", []string{"Base"},
		constructorFn(param("cap", "uint256")),
	)

	res, err := Flatten(target, resolverFor(base))
	require.NoError(t, err)

	cls, err := Classify(target, res, m.MockOptions{
		Constructors: map[string][]string{"Target": {"100"}},
	})
	require.NoError(t, err)

	// The mock inherits Target directly, so Target's own constructor
	// arguments must be forwarded too.
	require.Len(t, cls.Constructors, 1)
	assert.Equal(t, "Target", cls.Constructors[0].Contract)
}

func TestClassifyMissingConstructorArgsFailsFast(t *testing.T) {
	token, res := flattenToken(t)

	_, err := Classify(token, res, m.MockOptions{})
	require.Error(t, err)

	var missingErr *m.MissingConstructorArgsError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "Token", missingErr.Contract)
	assert.Equal(t, "Ownable", missingErr.Ancestor)
	assert.Equal(t, 1, missingErr.ParamCount)
}

func TestClassifyZeroArgConstructorNeedsNothing(t *testing.T) {
	base := contract("Base", nil, constructorFn())
	target := contract("Target", []string{"Base"})

	res, err := Flatten(target, resolverFor(base))
	require.NoError(t, err)

	cls, err := Classify(target, res, m.MockOptions{})
	require.NoError(t, err)
	assert.Empty(t, cls.Constructors)
}

func TestClassifyPartitionsAbstracts(t *testing.T) {
	tests := []struct {
		name         string
		scripted     map[string][]m.ScriptEntry
		wantScripted []string
		wantStubbed  []string
	}{
		{
			name:         "no scripts stubs everything",
			scripted:     nil,
			wantScripted: nil,
			wantStubbed:  []string{"rate"},
		},
		{
			name:         "scripted by name",
			scripted:     map[string][]m.ScriptEntry{"rate": {{Value: "5"}}},
			wantScripted: []string{"rate"},
			wantStubbed:  nil,
		},
		{
			name:         "unknown script keys are ignored",
			scripted:     map[string][]m.ScriptEntry{"other": {{Value: "1"}}},
			wantScripted: nil,
			wantStubbed:  []string{"rate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, res := flattenToken(t)

			opts := m.MockOptions{
				Constructors: map[string][]string{"Ownable": {"0x01"}},
				Scripted:     tt.scripted,
			}

			cls, err := Classify(token, res, opts)
			require.NoError(t, err)

			var scripted []string
			for _, sf := range cls.Scripted {
				scripted = append(scripted, sf.Fn.Name)
			}

			var stubbed []string
			for _, fn := range cls.Stubbed {
				stubbed = append(stubbed, fn.Name)
			}

			assert.Equal(t, tt.wantScripted, scripted)
			assert.Equal(t, tt.wantStubbed, stubbed)
			assert.Len(t, cls.Abstracts, 1)
		})
	}
}

func TestClassifyUnnamedFunctionsAlwaysStub(t *testing.T) {
	target := contract("Gateway", nil,
		&m.FunctionDefinition{Kind: m.FnFallback, Visibility: m.VisExternal},
		&m.FunctionDefinition{Kind: m.FnReceive, Visibility: m.VisExternal, Mutability: m.MutPayable},
	)

	res, err := Flatten(target, resolverFor())
	require.NoError(t, err)

	// A script keyed by the empty string must not capture unnamed functions.
	cls, err := Classify(target, res, m.MockOptions{
		Scripted: map[string][]m.ScriptEntry{"": {{Value: "1"}}},
	})
	require.NoError(t, err)

	assert.Empty(t, cls.Scripted)
	require.Len(t, cls.Stubbed, 2)
	assert.Equal(t, m.FnFallback, cls.Stubbed[0].Kind)
	assert.Equal(t, m.FnReceive, cls.Stubbed[1].Kind)
}

func TestClassifyIsIdempotent(t *testing.T) {
	token, res := flattenToken(t)

	opts := m.MockOptions{
		Constructors: map[string][]string{"Ownable": {"0x01"}},
		Scripted:     map[string][]m.ScriptEntry{"rate": {{Value: "5"}, {Value: "7"}}},
	}

	first, err := Classify(token, res, opts)
	require.NoError(t, err)

	second, err := Classify(token, res, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
