// Package model defines the data structures for Solidity mock generation.
package model

import "strings"

// Path represents a file system path.
type Path string

// ContractKind distinguishes the three Solidity contract-like declarations.
type ContractKind string

const (
	// KindContract represents a regular (possibly abstract) contract.
	KindContract ContractKind = "contract"
	// KindInterface represents an interface declaration.
	KindInterface ContractKind = "interface"
	// KindLibrary represents a library declaration.
	KindLibrary ContractKind = "library"
)

// FunctionKind distinguishes the function-like members of a contract.
type FunctionKind string

const (
	// FnFunction is an ordinary named function.
	FnFunction FunctionKind = "function"
	// FnConstructor is the contract constructor.
	FnConstructor FunctionKind = "constructor"
	// FnFallback is the unnamed fallback function.
	FnFallback FunctionKind = "fallback"
	// FnReceive is the unnamed receive function.
	FnReceive FunctionKind = "receive"
)

// Visibility is a Solidity visibility specifier.
type Visibility string

const (
	// VisPublic members are callable internally and externally.
	VisPublic Visibility = "public"
	// VisExternal members are callable externally only.
	VisExternal Visibility = "external"
	// VisInternal members are reachable from derived contracts.
	VisInternal Visibility = "internal"
	// VisPrivate members are not reachable from derived contracts.
	VisPrivate Visibility = "private"
)

// Mutability is a Solidity state-mutability specifier. The empty string
// stands for nonpayable, which carries no keyword in source form.
type Mutability string

const (
	// MutNonpayable is the default mutability (no keyword).
	MutNonpayable Mutability = ""
	// MutView functions read but never modify state.
	MutView Mutability = "view"
	// MutPure functions neither read nor modify state.
	MutPure Mutability = "pure"
	// MutPayable functions accept ether.
	MutPayable Mutability = "payable"
)

// SourceUnit is one parsed source file: its directives and top-level
// contract declarations, in declaration order.
type SourceUnit struct {
	AbsolutePath Path
	License      string
	Pragmas      []*PragmaDirective
	Imports      []*ImportDirective
	Contracts    []*ContractDefinition
}

// PragmaDirective carries the raw literal tokens of a pragma, as the
// compiler tokenizes them (e.g. ["solidity", "^", "0.8", ".0"]).
type PragmaDirective struct {
	Literals []string
}

// Source reconstructs the pragma body from its literal tokens.
func (p *PragmaDirective) Source() string {
	if len(p.Literals) == 0 {
		return ""
	}

	return p.Literals[0] + " " + strings.Join(p.Literals[1:], "")
}

// ImportDirective references another source file. File holds the path as
// written in source; AbsolutePath the resolved path when known.
type ImportDirective struct {
	File         string
	AbsolutePath Path
}

// ContractDefinition is a contract, interface or library declaration.
// The order of Nodes is the declaration order and is semantically
// significant: it must survive flattening and assembly unchanged.
type ContractDefinition struct {
	Name     string
	Kind     ContractKind
	Abstract bool
	Bases    []*InheritanceSpecifier
	Nodes    []ContractNode
}

// Constructor returns the contract's constructor declaration, or nil.
func (c *ContractDefinition) Constructor() *FunctionDefinition {
	for _, node := range c.Nodes {
		if fn, ok := node.(*FunctionDefinition); ok && fn.Kind == FnConstructor {
			return fn
		}
	}

	return nil
}

// InheritanceSpecifier names one direct base contract, with any constructor
// arguments bound at the declaration site.
type InheritanceSpecifier struct {
	Name      string
	Arguments []Expression
}

// ContractNode is a member declaration inside a contract body.
type ContractNode interface {
	isContractNode()
}

// FunctionDefinition is a function-like member. A nil Body marks the
// function abstract. Name is empty for constructors, fallback and receive.
type FunctionDefinition struct {
	Kind       FunctionKind
	Name       string
	Visibility Visibility
	Mutability Mutability
	Virtual    bool
	Override   bool
	Modifiers  []*ModifierInvocation
	Parameters []*VariableDeclaration
	Returns    []*VariableDeclaration
	Body       *Block
}

func (*FunctionDefinition) isContractNode() {}

// IsAbstract reports whether the function has no implementation body.
func (f *FunctionDefinition) IsAbstract() bool {
	return f.Body == nil
}

// DisplayName returns the name used in diagnostics, substituting the
// function kind for unnamed functions.
func (f *FunctionDefinition) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}

	return string(f.Kind)
}

// CloneSignature copies everything that identifies the function to the
// compiler (kind, name, parameters, returns, visibility, mutability) and
// nothing else. Parameter and return declarations are deep-copied so a
// synthesizer can rename them without touching the input tree.
func (f *FunctionDefinition) CloneSignature() *FunctionDefinition {
	clone := &FunctionDefinition{
		Kind:       f.Kind,
		Name:       f.Name,
		Visibility: f.Visibility,
		Mutability: f.Mutability,
		Parameters: cloneParams(f.Parameters),
		Returns:    cloneParams(f.Returns),
	}

	return clone
}

func cloneParams(params []*VariableDeclaration) []*VariableDeclaration {
	if params == nil {
		return nil
	}

	out := make([]*VariableDeclaration, len(params))
	for i, p := range params {
		c := *p
		out[i] = &c
	}

	return out
}

// ModifierInvocation is a modifier (or base-constructor) call attached to a
// function header, e.g. `Ownable(0x01)` on a constructor.
type ModifierInvocation struct {
	Name      string
	Arguments []Expression
}

// VariableDeclaration covers state variables, parameters and return values.
// TypeName holds the source form of the type (e.g. "uint256",
// "mapping(address => uint256)").
type VariableDeclaration struct {
	Name            string
	TypeName        string
	StorageLocation string
	Visibility      Visibility
	Constant        bool
	StateVariable   bool
	Value           Expression
}

func (*VariableDeclaration) isContractNode() {}

// Block is a sequence of statements forming a function body. A present but
// empty block is a valid (trivial) implementation.
type Block struct {
	Statements []Statement
}

// Statement is a node that can appear in a synthesized function body.
type Statement interface {
	isStatement()
}

// ExpressionStatement wraps an expression evaluated for effect.
type ExpressionStatement struct {
	Expr Expression
}

// Return returns Expr, or nothing when Expr is nil.
type Return struct {
	Expr Expression
}

// If guards Then on Condition. Synthesized bodies never need an else branch.
type If struct {
	Condition Expression
	Then      *Block
}

// VarDeclStatement declares a local variable with an initializer.
type VarDeclStatement struct {
	Decl  *VariableDeclaration
	Value Expression
}

func (*ExpressionStatement) isStatement() {}
func (*Return) isStatement()              {}
func (*If) isStatement()                  {}
func (*VarDeclStatement) isStatement()    {}

// Expression is a node that can appear in a synthesized expression.
type Expression interface {
	isExpression()
}

// Literal is a verbatim source token: a number, address, string or tuple
// literal supplied by the caller and emitted unchanged.
type Literal struct {
	Value string
}

// Identifier names a variable or function.
type Identifier struct {
	Name string
}

// BinaryOp applies Op between Left and Right.
type BinaryOp struct {
	Op    string
	Left  Expression
	Right Expression
}

// Assignment assigns RHS to LHS.
type Assignment struct {
	LHS Expression
	RHS Expression
}

// FunctionCall invokes Callee with Arguments.
type FunctionCall struct {
	Callee    Expression
	Arguments []Expression
}

// NewExpr is a contract creation expression (`new TypeName`). It appears as
// the callee of a FunctionCall.
type NewExpr struct {
	TypeName string
}

func (*Literal) isExpression()      {}
func (*Identifier) isExpression()   {}
func (*BinaryOp) isExpression()     {}
func (*Assignment) isExpression()   {}
func (*FunctionCall) isExpression() {}
func (*NewExpr) isExpression()      {}
