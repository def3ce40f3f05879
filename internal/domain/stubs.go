package domain

import (
	"fmt"

	m "solmock.dev/pkg/solmock/internal/model"
)

// SynthesizeStubs builds a trivial concrete override for every abstract
// function that no script covers, so nothing in the mock stays abstract.
// The signature (parameters, return types, mutability, visibility) is
// preserved exactly; the body is empty and relies on named return variables
// being zero-initialized, so unnamed returns gain synthetic names.
func SynthesizeStubs(stubbed []*m.FunctionDefinition) []m.ContractNode {
	out := make([]m.ContractNode, 0, len(stubbed))
	for _, fn := range stubbed {
		out = append(out, synthesizeStub(fn))
	}

	return out
}

func synthesizeStub(fn *m.FunctionDefinition) *m.FunctionDefinition {
	stub := fn.CloneSignature()
	stub.Override = true
	stub.Body = &m.Block{}

	for i, ret := range stub.Returns {
		if ret.Name == "" {
			ret.Name = fmt.Sprintf("ret%d", i)
		}

		if ret.StorageLocation == "" {
			ret.StorageLocation = returnLocation(ret.TypeName)
		}
	}

	return stub
}
