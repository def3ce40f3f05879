package domain

import (
	m "solmock.dev/pkg/solmock/internal/model"
)

// ConstructorRequirement records one contract in the hierarchy whose
// constructor takes arguments that the mock must forward explicitly.
type ConstructorRequirement struct {
	Contract string
	Params   []*m.VariableDeclaration
	Args     []string
}

// ScriptedFunction pairs an abstract function with the return script that
// will drive its synthesized override.
type ScriptedFunction struct {
	Fn     *m.FunctionDefinition
	Script []m.ScriptEntry
}

// Classification partitions the flattened member set for synthesis.
// Constructors lists argument-taking constructors in a fixed order: the
// target's own first (the mock inherits it directly), then ancestors in
// traversal order. Scripted and Stubbed partition the abstract functions by
// whether the options script them by name; their relative order follows the
// flattened member order.
type Classification struct {
	Constructors []ConstructorRequirement
	Abstracts    []*m.FunctionDefinition
	Scripted     []ScriptedFunction
	Stubbed      []*m.FunctionDefinition
}

// Classify computes the classification for a flatten result and validates
// the options against it. Every constructor requirement must have a matching
// entry in opts.Constructors; a missing one fails with
// *model.MissingConstructorArgsError before any synthesis happens.
func Classify(target *m.ContractDefinition, res FlattenResult, opts m.MockOptions) (Classification, error) {
	var cls Classification

	hierarchy := append([]*m.ContractDefinition{target}, res.Parents...)
	for _, contract := range hierarchy {
		ctor := contract.Constructor()
		if ctor == nil || len(ctor.Parameters) == 0 {
			continue
		}

		args, ok := opts.ConstructorArgs(contract.Name)
		if !ok {
			return Classification{}, &m.MissingConstructorArgsError{
				Contract:   target.Name,
				Ancestor:   contract.Name,
				ParamCount: len(ctor.Parameters),
			}
		}

		cls.Constructors = append(cls.Constructors, ConstructorRequirement{
			Contract: contract.Name,
			Params:   ctor.Parameters,
			Args:     args,
		})
	}

	for _, node := range res.Flat.Nodes {
		fn, ok := node.(*m.FunctionDefinition)
		if !ok || !fn.IsAbstract() {
			continue
		}

		cls.Abstracts = append(cls.Abstracts, fn)

		// Unnamed functions cannot be scripted by name; they always stub.
		if script, ok := opts.Script(fn.Name); ok {
			cls.Scripted = append(cls.Scripted, ScriptedFunction{Fn: fn, Script: script})
		} else {
			cls.Stubbed = append(cls.Stubbed, fn)
		}
	}

	return cls, nil
}
