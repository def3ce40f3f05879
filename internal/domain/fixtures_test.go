package domain

import (
	m "solmock.dev/pkg/solmock/internal/model"
)

// Builders for the contract trees used across the domain tests.

func stateVar(name, typeName string, vis m.Visibility) *m.VariableDeclaration {
	return &m.VariableDeclaration{
		Name:          name,
		TypeName:      typeName,
		Visibility:    vis,
		StateVariable: true,
	}
}

func param(name, typeName string) *m.VariableDeclaration {
	return &m.VariableDeclaration{Name: name, TypeName: typeName}
}

func concreteFn(name string, vis m.Visibility, mut m.Mutability, params []*m.VariableDeclaration, returns []*m.VariableDeclaration) *m.FunctionDefinition {
	return &m.FunctionDefinition{
		Kind:       m.FnFunction,
		Name:       name,
		Visibility: vis,
		Mutability: mut,
		Parameters: params,
		Returns:    returns,
		Body:       &m.Block{},
	}
}

func abstractFn(name string, vis m.Visibility, mut m.Mutability, params []*m.VariableDeclaration, returns []*m.VariableDeclaration) *m.FunctionDefinition {
	return &m.FunctionDefinition{
		Kind:       m.FnFunction,
		Name:       name,
		Visibility: vis,
		Mutability: mut,
		Virtual:    true,
		Parameters: params,
		Returns:    returns,
	}
}

func constructorFn(params ...*m.VariableDeclaration) *m.FunctionDefinition {
	return &m.FunctionDefinition{
		Kind:       m.FnConstructor,
		Parameters: params,
		Body:       &m.Block{},
	}
}

func contract(name string, bases []string, nodes ...m.ContractNode) *m.ContractDefinition {
	c := &m.ContractDefinition{
		Name:  name,
		Kind:  m.KindContract,
		Nodes: nodes,
	}
	for _, base := range bases {
		c.Bases = append(c.Bases, &m.InheritanceSpecifier{Name: base})
	}

	return c
}

// newOwnable builds the ancestor used by most scenarios: one internal state
// variable, a one-argument constructor and a public getter.
func newOwnable() *m.ContractDefinition {
	return contract("Ownable", nil,
		stateVar("_owner", "address", m.VisInternal),
		constructorFn(param("initialOwner", "address")),
		concreteFn("owner", m.VisPublic, m.MutView, nil, []*m.VariableDeclaration{param("", "address")}),
	)
}

// newToken builds the target: inherits Ownable, declares an internal state
// variable, an abstract rate() and a concrete internal burn().
func newToken() *m.ContractDefinition {
	return contract("Token", []string{"Ownable"},
		stateVar("_supply", "uint256", m.VisInternal),
		abstractFn("rate", m.VisPublic, m.MutNonpayable, nil, []*m.VariableDeclaration{param("", "uint256")}),
		concreteFn("burn", m.VisInternal, m.MutNonpayable, []*m.VariableDeclaration{param("amount", "uint256")}, nil),
	)
}

// newTokenCatalog wires Token.sol and Ownable.sol into a catalog with
// transitive scope, mirroring what the catalog builder produces.
func newTokenCatalog() (m.SourceCatalog, *m.ContractDefinition, *m.ContractDefinition) {
	token := newToken()
	ownable := newOwnable()

	tokenUnit := &m.SourceUnit{
		AbsolutePath: "Token.sol",
		License:      "MIT",
		Pragmas:      []*m.PragmaDirective{{Literals: []string{"solidity", "^", "0.8", ".0"}}},
		Imports:      []*m.ImportDirective{{File: "./Ownable.sol", AbsolutePath: "Ownable.sol"}},
		Contracts:    []*m.ContractDefinition{token},
	}
	ownableUnit := &m.SourceUnit{
		AbsolutePath: "Ownable.sol",
		Contracts:    []*m.ContractDefinition{ownable},
	}

	catalog := m.SourceCatalog{
		"Token.sol": &m.SourceEntry{
			Unit:      tokenUnit,
			Contracts: map[string]*m.ContractDefinition{"Token": token},
			Scope:     map[string]m.Path{"Token": "Token.sol", "Ownable": "Ownable.sol"},
		},
		"Ownable.sol": &m.SourceEntry{
			Unit:      ownableUnit,
			Contracts: map[string]*m.ContractDefinition{"Ownable": ownable},
			Scope:     map[string]m.Path{"Ownable": "Ownable.sol"},
		},
	}

	return catalog, token, ownable
}

// resolverFor resolves names against a fixed set of declarations.
func resolverFor(contracts ...*m.ContractDefinition) ResolveFunc {
	index := map[string]*m.ContractDefinition{}
	for _, c := range contracts {
		index[c.Name] = c
	}

	return func(name string) (*m.ContractDefinition, error) {
		c, ok := index[name]
		if !ok {
			return nil, &m.ScopeResolutionError{Missing: name}
		}

		return c, nil
	}
}
