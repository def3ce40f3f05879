package domain

import (
	"fmt"
	"strings"

	m "solmock.dev/pkg/solmock/internal/model"
)

// DefaultExposedPrefix is prepended to the names of generated wrappers.
const DefaultExposedPrefix = "exposed"

// SynthesizeExposed walks the flattened members in declaration order and
// emits a public wrapper for each internal one: a view getter for internal
// state variables and a forwarding function for internal functions. Private
// members are skipped since Solidity hides them from derived contracts, and
// reference-shaped state (mappings, arrays) is skipped because it cannot be
// returned wholesale. Members that are already public or external need no
// wrapper and produce nothing.
func SynthesizeExposed(flat *m.ContractDefinition, prefix string) []m.ContractNode {
	if prefix == "" {
		prefix = DefaultExposedPrefix
	}

	taken := map[string]bool{}

	var out []m.ContractNode

	for _, node := range flat.Nodes {
		switch decl := node.(type) {
		case *m.VariableDeclaration:
			if !decl.StateVariable || decl.Visibility != m.VisInternal {
				continue
			}

			if !returnableType(decl.TypeName) {
				continue
			}

			out = append(out, exposeVariable(decl, wrapperName(prefix, decl.Name, taken)))
		case *m.FunctionDefinition:
			if decl.Kind != m.FnFunction || decl.Visibility != m.VisInternal {
				continue
			}

			out = append(out, exposeFunction(decl, wrapperName(prefix, decl.Name, taken)))
		}
	}

	return out
}

func exposeVariable(decl *m.VariableDeclaration, name string) *m.FunctionDefinition {
	ret := &m.VariableDeclaration{
		TypeName:        decl.TypeName,
		StorageLocation: returnLocation(decl.TypeName),
	}

	return &m.FunctionDefinition{
		Kind:       m.FnFunction,
		Name:       name,
		Visibility: m.VisPublic,
		Mutability: m.MutView,
		Returns:    []*m.VariableDeclaration{ret},
		Body: &m.Block{Statements: []m.Statement{
			&m.Return{Expr: &m.Identifier{Name: decl.Name}},
		}},
	}
}

func exposeFunction(decl *m.FunctionDefinition, name string) *m.FunctionDefinition {
	wrapper := decl.CloneSignature()
	wrapper.Name = name
	wrapper.Visibility = m.VisPublic

	args := make([]m.Expression, 0, len(wrapper.Parameters))
	for i, p := range wrapper.Parameters {
		if p.Name == "" {
			p.Name = fmt.Sprintf("p%d", i)
		}

		if p.StorageLocation == "" {
			p.StorageLocation = returnLocation(p.TypeName)
		}

		args = append(args, &m.Identifier{Name: p.Name})
	}

	call := &m.FunctionCall{Callee: &m.Identifier{Name: decl.Name}, Arguments: args}

	body := &m.Block{}
	if len(wrapper.Returns) > 0 {
		body.Statements = append(body.Statements, &m.Return{Expr: call})
	} else {
		body.Statements = append(body.Statements, &m.ExpressionStatement{Expr: call})
	}

	wrapper.Body = body

	return wrapper
}

// wrapperName derives a public name from an internal one, trimming the
// leading-underscore convention. Collisions between e.g. `_rate` and `rate`
// are disambiguated with a numeric suffix.
func wrapperName(prefix, name string, taken map[string]bool) string {
	base := prefix + upperFirst(strings.TrimLeft(name, "_"))

	candidate := base
	for n := 2; taken[candidate]; n++ {
		candidate = fmt.Sprintf("%s%d", base, n)
	}

	taken[candidate] = true

	return candidate
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// returnableType reports whether a state variable of this type can be
// returned from a getter.
func returnableType(typeName string) bool {
	return !strings.HasPrefix(typeName, "mapping(") && !strings.Contains(typeName, "[")
}

// returnLocation supplies the data location required for reference types in
// function signatures.
func returnLocation(typeName string) string {
	switch {
	case typeName == "string" || typeName == "bytes":
		return "memory"
	case strings.HasPrefix(typeName, "struct "), strings.Contains(typeName, "["):
		return "memory"
	default:
		return ""
	}
}
