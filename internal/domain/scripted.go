package domain

import (
	"fmt"

	m "solmock.dev/pkg/solmock/internal/model"
)

// SynthesizeScripted builds a concrete override for each scripted abstract
// function. The override plays the script back one entry per call, driven by
// a private storage counter declared alongside it; once the script is
// exhausted the last value repeats on every further call. Functions declared
// view or pure cannot persist a counter, so their overrides return the first
// script value unconditionally.
func SynthesizeScripted(scripted []ScriptedFunction) []m.ContractNode {
	var out []m.ContractNode

	for _, sf := range scripted {
		values := expandScript(sf.Script)
		if len(values) == 0 {
			// An empty script is indistinguishable from no script; fall
			// back to a stub so the function does not stay abstract.
			out = append(out, synthesizeStub(sf.Fn))
			continue
		}

		fn := sf.Fn.CloneSignature()
		fn.Override = true

		if len(values) == 1 || fn.Mutability == m.MutView || fn.Mutability == m.MutPure {
			fn.Body = &m.Block{Statements: []m.Statement{
				&m.Return{Expr: &m.Literal{Value: values[0]}},
			}}
			out = append(out, fn)

			continue
		}

		counter := &m.VariableDeclaration{
			Name:          scriptCounterName(fn.Name),
			TypeName:      "uint256",
			Visibility:    m.VisPrivate,
			StateVariable: true,
		}
		fn.Body = scriptedBody(counter.Name, values)

		out = append(out, counter, fn)
	}

	return out
}

// scriptedBody reads the counter once, advances it while entries remain and
// dispatches on the captured position so the Nth call observes the Nth value.
func scriptedBody(counter string, values []string) *m.Block {
	last := len(values) - 1

	statements := []m.Statement{
		&m.VarDeclStatement{
			Decl:  &m.VariableDeclaration{Name: "index", TypeName: "uint256"},
			Value: &m.Identifier{Name: counter},
		},
		&m.If{
			Condition: &m.BinaryOp{
				Op:    "<",
				Left:  &m.Identifier{Name: "index"},
				Right: &m.Literal{Value: fmt.Sprintf("%d", last)},
			},
			Then: &m.Block{Statements: []m.Statement{
				&m.ExpressionStatement{Expr: &m.Assignment{
					LHS: &m.Identifier{Name: counter},
					RHS: &m.BinaryOp{
						Op:    "+",
						Left:  &m.Identifier{Name: "index"},
						Right: &m.Literal{Value: "1"},
					},
				}},
			}},
		},
	}

	for i := 0; i < last; i++ {
		statements = append(statements, &m.If{
			Condition: &m.BinaryOp{
				Op:    "==",
				Left:  &m.Identifier{Name: "index"},
				Right: &m.Literal{Value: fmt.Sprintf("%d", i)},
			},
			Then: &m.Block{Statements: []m.Statement{
				&m.Return{Expr: &m.Literal{Value: values[i]}},
			}},
		})
	}

	statements = append(statements, &m.Return{Expr: &m.Literal{Value: values[last]}})

	return &m.Block{Statements: statements}
}

func expandScript(entries []m.ScriptEntry) []string {
	var values []string

	for _, entry := range entries {
		times := entry.Times
		if times < 1 {
			times = 1
		}

		for i := 0; i < times; i++ {
			values = append(values, entry.Value)
		}
	}

	return values
}

func scriptCounterName(fnName string) string {
	return "_" + fnName + "ScriptIndex"
}
