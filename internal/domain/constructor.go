package domain

import (
	m "solmock.dev/pkg/solmock/internal/model"
)

// SynthesizeConstructor builds the forwarding constructor: a parameterless
// constructor whose header invokes each argument-taking constructor in the
// hierarchy with the caller-supplied literals. Contracts whose constructors
// take no arguments run implicitly and are omitted. Returns nil when nothing
// needs forwarding, in which case the mock keeps the implicit default
// constructor.
func SynthesizeConstructor(requirements []ConstructorRequirement) *m.FunctionDefinition {
	if len(requirements) == 0 {
		return nil
	}

	modifiers := make([]*m.ModifierInvocation, 0, len(requirements))
	for _, req := range requirements {
		args := make([]m.Expression, 0, len(req.Args))
		for _, arg := range req.Args {
			args = append(args, &m.Literal{Value: arg})
		}

		modifiers = append(modifiers, &m.ModifierInvocation{
			Name:      req.Contract,
			Arguments: args,
		})
	}

	return &m.FunctionDefinition{
		Kind:      m.FnConstructor,
		Modifiers: modifiers,
		Body:      &m.Block{},
	}
}
