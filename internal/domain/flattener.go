// Package domain contains the core mock synthesis pipeline: hierarchy
// flattening, member classification, declaration synthesis and assembly.
package domain

import (
	m "solmock.dev/pkg/solmock/internal/model"
)

// ResolveFunc resolves a base-contract name to its declaration. It must
// return an error (typically *model.ScopeResolutionError) when the name is
// not in scope.
type ResolveFunc func(name string) (*m.ContractDefinition, error)

// FlattenResult is the outcome of flattening one inheritance hierarchy.
// Flat merges the member lists of the target and every ancestor into a
// single declaration; Parents lists the proper ancestors in depth-first
// pre-order from the target: each base is followed by its own bases before
// the next sibling, bases in declaration order, already-visited ones skipped.
// Constructors are excluded from Flat because each one is invoked
// individually; they stay reachable through Parents.
type FlattenResult struct {
	Flat    *m.ContractDefinition
	Parents []*m.ContractDefinition
}

// Flatten walks the inheritance graph of contract depth-first, resolving
// base names through resolve, and merges all member declarations into one
// flat declaration. Member order within each contract is preserved, and a
// same-named member declared nearer to the target shadows farther
// occurrences (most-derived wins). A visited set keyed by contract name
// makes the walk terminate even on a malformed cyclic hierarchy.
func Flatten(contract *m.ContractDefinition, resolve ResolveFunc) (FlattenResult, error) {
	visited := map[string]bool{contract.Name: true}
	seen := map[string]bool{}

	flat := &m.ContractDefinition{
		Name:     contract.Name,
		Kind:     contract.Kind,
		Abstract: contract.Abstract,
		Bases:    contract.Bases,
	}
	flat.Nodes = mergeMembers(flat.Nodes, contract, seen)

	var parents []*m.ContractDefinition

	var walk func(c *m.ContractDefinition) error
	walk = func(c *m.ContractDefinition) error {
		for _, base := range c.Bases {
			if visited[base.Name] {
				continue
			}

			visited[base.Name] = true

			parent, err := resolve(base.Name)
			if err != nil {
				return err
			}

			parents = append(parents, parent)
			flat.Nodes = mergeMembers(flat.Nodes, parent, seen)

			if err := walk(parent); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk(contract); err != nil {
		return FlattenResult{}, err
	}

	return FlattenResult{Flat: flat, Parents: parents}, nil
}

// mergeMembers appends the non-constructor members of src that are not yet
// shadowed by a nearer declaration. Unnamed functions (fallback, receive)
// are keyed by their kind so each occurs at most once.
func mergeMembers(dst []m.ContractNode, src *m.ContractDefinition, seen map[string]bool) []m.ContractNode {
	for _, node := range src.Nodes {
		key := memberKey(node)
		if key == "" {
			continue
		}

		if seen[key] {
			continue
		}

		seen[key] = true
		dst = append(dst, node)
	}

	return dst
}

func memberKey(node m.ContractNode) string {
	switch decl := node.(type) {
	case *m.FunctionDefinition:
		if decl.Kind == m.FnConstructor {
			return ""
		}

		if decl.Name == "" {
			return "<" + string(decl.Kind) + ">"
		}

		return decl.Name
	case *m.VariableDeclaration:
		return decl.Name
	default:
		return ""
	}
}
