package domain

import (
	"path/filepath"

	m "solmock.dev/pkg/solmock/internal/model"
)

// DefaultMockSuffix is appended to the target name to form the mock name.
const DefaultMockSuffix = "Mock"

// Synthesized carries the output of the four synthesizers into assembly.
type Synthesized struct {
	Constructor *m.FunctionDefinition
	Exposed     []m.ContractNode
	Scripted    []m.ContractNode
	Stubs       []m.ContractNode
}

// Assemble composes the synthesized declarations into the mock source unit.
// The mock contract inherits only from the target (flattening already folded
// the rest of the chain in) and lays its members out in a fixed order:
// forwarding constructor, exposed wrappers, scripted overrides (each with
// its counter), stubs. The unit carries the original file's pragma
// directives verbatim, an import of the original file, the mock itself and a
// forcer contract whose constructor instantiates the mock so that
// compilation fails if anything abstract slipped through.
func Assemble(unit *m.SourceUnit, path m.Path, target *m.ContractDefinition, syn Synthesized, suffix string) *m.SourceUnit {
	if suffix == "" {
		suffix = DefaultMockSuffix
	}

	mockName := target.Name + suffix

	var nodes []m.ContractNode
	if syn.Constructor != nil {
		nodes = append(nodes, syn.Constructor)
	}

	nodes = append(nodes, syn.Exposed...)
	nodes = append(nodes, syn.Scripted...)
	nodes = append(nodes, syn.Stubs...)

	mock := &m.ContractDefinition{
		Name:  mockName,
		Kind:  m.KindContract,
		Bases: []*m.InheritanceSpecifier{{Name: target.Name}},
		Nodes: nodes,
	}

	forcer := &m.ContractDefinition{
		Name: mockName + "NonAbstractForcer",
		Kind: m.KindContract,
		Nodes: []m.ContractNode{
			&m.FunctionDefinition{
				Kind: m.FnConstructor,
				Body: &m.Block{Statements: []m.Statement{
					&m.ExpressionStatement{Expr: &m.FunctionCall{
						Callee: &m.NewExpr{TypeName: mockName},
					}},
				}},
			},
		},
	}

	pragmas := make([]*m.PragmaDirective, len(unit.Pragmas))
	copy(pragmas, unit.Pragmas)

	return &m.SourceUnit{
		License: unit.License,
		Pragmas: pragmas,
		Imports: []*m.ImportDirective{{
			File:         "./" + filepath.Base(string(path)),
			AbsolutePath: path,
		}},
		Contracts: []*m.ContractDefinition{mock, forcer},
	}
}
