package adapter

import (
	"fmt"
	"strings"

	m "solmock.dev/pkg/solmock/internal/model"
)

// Printer serializes a synthesized source unit back to Solidity text.
type Printer interface {
	Print(unit *m.SourceUnit) ([]byte, error)
}

// SolidityPrinter is the reverse of the AST decoder for the node kinds the
// synthesizers produce. It never needs to print original member bodies: the
// mock inherits behavior instead of copying it.
type SolidityPrinter struct {
	indent string
}

// NewSolidityPrinter constructs a SolidityPrinter with four-space indents.
func NewSolidityPrinter() *SolidityPrinter {
	return &SolidityPrinter{indent: "    "}
}

// Print renders the unit as Solidity source.
func (p *SolidityPrinter) Print(unit *m.SourceUnit) ([]byte, error) {
	var b strings.Builder

	if unit.License != "" {
		fmt.Fprintf(&b, "// SPDX-License-Identifier: %s\n", unit.License)
	}

	for _, pragma := range unit.Pragmas {
		fmt.Fprintf(&b, "pragma %s;\n", pragma.Source())
	}

	for _, imp := range unit.Imports {
		fmt.Fprintf(&b, "import %q;\n", imp.File)
	}

	for _, contract := range unit.Contracts {
		b.WriteString("\n")

		if err := p.printContract(&b, contract); err != nil {
			return nil, err
		}
	}

	return []byte(b.String()), nil
}

func (p *SolidityPrinter) printContract(b *strings.Builder, contract *m.ContractDefinition) error {
	if contract.Abstract {
		b.WriteString("abstract ")
	}

	fmt.Fprintf(b, "%s %s", contract.Kind, contract.Name)

	if len(contract.Bases) > 0 {
		names := make([]string, 0, len(contract.Bases))
		for _, base := range contract.Bases {
			names = append(names, base.Name)
		}

		fmt.Fprintf(b, " is %s", strings.Join(names, ", "))
	}

	b.WriteString(" {\n")

	for i, node := range contract.Nodes {
		if i > 0 {
			b.WriteString("\n")
		}

		switch decl := node.(type) {
		case *m.VariableDeclaration:
			fmt.Fprintf(b, "%s%s;\n", p.indent, p.stateVariable(decl))
		case *m.FunctionDefinition:
			if err := p.printFunction(b, decl, 1); err != nil {
				return err
			}
		default:
			return fmt.Errorf("print: unsupported contract member %T", node)
		}
	}

	b.WriteString("}\n")

	return nil
}

func (p *SolidityPrinter) printFunction(b *strings.Builder, fn *m.FunctionDefinition, depth int) error {
	pad := strings.Repeat(p.indent, depth)

	header, err := p.functionHeader(fn)
	if err != nil {
		return err
	}

	if fn.Body == nil {
		fmt.Fprintf(b, "%s%s;\n", pad, header)
		return nil
	}

	if len(fn.Body.Statements) == 0 {
		fmt.Fprintf(b, "%s%s {}\n", pad, header)
		return nil
	}

	fmt.Fprintf(b, "%s%s {\n", pad, header)

	if err := p.printStatements(b, fn.Body.Statements, depth+1); err != nil {
		return err
	}

	fmt.Fprintf(b, "%s}\n", pad)

	return nil
}

func (p *SolidityPrinter) functionHeader(fn *m.FunctionDefinition) (string, error) {
	var parts []string

	switch fn.Kind {
	case m.FnConstructor:
		parts = append(parts, "constructor("+p.paramList(fn.Parameters)+")")
	case m.FnFallback:
		parts = append(parts, "fallback()")
	case m.FnReceive:
		parts = append(parts, "receive()")
	case m.FnFunction:
		parts = append(parts, fmt.Sprintf("function %s(%s)", fn.Name, p.paramList(fn.Parameters)))
	default:
		return "", fmt.Errorf("print: unsupported function kind %q", fn.Kind)
	}

	// Constructors carry no visibility since Solidity 0.7.
	if fn.Kind != m.FnConstructor && fn.Visibility != "" {
		parts = append(parts, string(fn.Visibility))
	}

	if fn.Mutability != m.MutNonpayable {
		parts = append(parts, string(fn.Mutability))
	}

	if fn.Virtual {
		parts = append(parts, "virtual")
	}

	if fn.Override {
		parts = append(parts, "override")
	}

	for _, mod := range fn.Modifiers {
		parts = append(parts, mod.Name+"("+p.exprList(mod.Arguments)+")")
	}

	if len(fn.Returns) > 0 {
		parts = append(parts, "returns ("+p.paramList(fn.Returns)+")")
	}

	return strings.Join(parts, " "), nil
}

func (p *SolidityPrinter) printStatements(b *strings.Builder, statements []m.Statement, depth int) error {
	pad := strings.Repeat(p.indent, depth)

	for _, stmt := range statements {
		switch s := stmt.(type) {
		case *m.ExpressionStatement:
			fmt.Fprintf(b, "%s%s;\n", pad, p.expr(s.Expr))
		case *m.Return:
			if s.Expr == nil {
				fmt.Fprintf(b, "%sreturn;\n", pad)
			} else {
				fmt.Fprintf(b, "%sreturn %s;\n", pad, p.expr(s.Expr))
			}
		case *m.VarDeclStatement:
			fmt.Fprintf(b, "%s%s %s = %s;\n", pad, s.Decl.TypeName, s.Decl.Name, p.expr(s.Value))
		case *m.If:
			fmt.Fprintf(b, "%sif (%s) {\n", pad, p.expr(s.Condition))

			if err := p.printStatements(b, s.Then.Statements, depth+1); err != nil {
				return err
			}

			fmt.Fprintf(b, "%s}\n", pad)
		default:
			return fmt.Errorf("print: unsupported statement %T", stmt)
		}
	}

	return nil
}

func (p *SolidityPrinter) expr(expr m.Expression) string {
	switch e := expr.(type) {
	case *m.Literal:
		return e.Value
	case *m.Identifier:
		return e.Name
	case *m.BinaryOp:
		return fmt.Sprintf("%s %s %s", p.expr(e.Left), e.Op, p.expr(e.Right))
	case *m.Assignment:
		return fmt.Sprintf("%s = %s", p.expr(e.LHS), p.expr(e.RHS))
	case *m.FunctionCall:
		return fmt.Sprintf("%s(%s)", p.expr(e.Callee), p.exprList(e.Arguments))
	case *m.NewExpr:
		return "new " + e.TypeName
	default:
		return fmt.Sprintf("/* unsupported %T */", expr)
	}
}

func (p *SolidityPrinter) exprList(exprs []m.Expression) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, p.expr(e))
	}

	return strings.Join(parts, ", ")
}

func (p *SolidityPrinter) paramList(params []*m.VariableDeclaration) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		segment := param.TypeName
		if param.StorageLocation != "" {
			segment += " " + param.StorageLocation
		}

		if param.Name != "" {
			segment += " " + param.Name
		}

		parts = append(parts, segment)
	}

	return strings.Join(parts, ", ")
}

// stateVariable renders a state variable declaration.
func (p *SolidityPrinter) stateVariable(decl *m.VariableDeclaration) string {
	segment := decl.TypeName

	if decl.Visibility != "" {
		segment += " " + string(decl.Visibility)
	}

	if decl.Constant {
		segment += " constant"
	}

	if decl.Name != "" {
		segment += " " + decl.Name
	}

	if decl.Value != nil {
		segment += " = " + p.expr(decl.Value)
	}

	return segment
}
