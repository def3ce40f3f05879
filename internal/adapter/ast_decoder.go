// Package adapter provides the infrastructure around the mock pipeline:
// compiler invocation, AST decoding, catalog construction, file access and
// Solidity pretty-printing.
package adapter

import (
	"encoding/json"
	"fmt"
	"strings"

	m "solmock.dev/pkg/solmock/internal/model"
)

// rawNode is the superset of solc compact-AST node fields this tool reads.
// Nodes are discriminated by nodeType; fields irrelevant to a given type
// simply stay zero.
type rawNode struct {
	NodeType         string          `json:"nodeType"`
	AbsolutePath     string          `json:"absolutePath"`
	License          string          `json:"license"`
	Name             string          `json:"name"`
	Literals         []string        `json:"literals"`
	File             string          `json:"file"`
	ContractKind     string          `json:"contractKind"`
	Abstract         bool            `json:"abstract"`
	BaseContracts    []rawBase       `json:"baseContracts"`
	Nodes            []rawNode       `json:"nodes"`
	Kind             string          `json:"kind"`
	Visibility       string          `json:"visibility"`
	StateMutability  string          `json:"stateMutability"`
	Virtual          bool            `json:"virtual"`
	Body             json.RawMessage `json:"body"`
	Parameters       *rawParamList   `json:"parameters"`
	ReturnParameters *rawParamList   `json:"returnParameters"`
	Constant         bool            `json:"constant"`
	StateVariable    bool            `json:"stateVariable"`
	StorageLocation  string          `json:"storageLocation"`
	TypeDescriptions *rawTypeDesc    `json:"typeDescriptions"`
}

type rawBase struct {
	BaseName struct {
		Name string `json:"name"`
	} `json:"baseName"`
}

type rawParamList struct {
	Parameters []rawNode `json:"parameters"`
}

type rawTypeDesc struct {
	TypeString string `json:"typeString"`
}

// hasBody reports whether a raw body field holds an actual block. Original
// member bodies are never re-emitted (the mock inherits them), so only their
// presence matters and their statements are not decoded.
func hasBody(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null"
}

// DecodeSourceUnit decodes one solc compact-JSON AST document into the model
// tree.
func DecodeSourceUnit(data []byte) (*m.SourceUnit, error) {
	var root rawNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode AST: %w", err)
	}

	if root.NodeType != "SourceUnit" {
		return nil, fmt.Errorf("decode AST: expected SourceUnit, got %q", root.NodeType)
	}

	return decodeUnit(root), nil
}

func decodeUnit(root rawNode) *m.SourceUnit {
	unit := &m.SourceUnit{
		AbsolutePath: m.Path(root.AbsolutePath),
		License:      root.License,
	}

	for _, node := range root.Nodes {
		switch node.NodeType {
		case "PragmaDirective":
			unit.Pragmas = append(unit.Pragmas, &m.PragmaDirective{Literals: node.Literals})
		case "ImportDirective":
			unit.Imports = append(unit.Imports, &m.ImportDirective{
				File:         node.File,
				AbsolutePath: m.Path(node.AbsolutePath),
			})
		case "ContractDefinition":
			unit.Contracts = append(unit.Contracts, decodeContract(node))
		}
	}

	return unit
}

func decodeContract(node rawNode) *m.ContractDefinition {
	contract := &m.ContractDefinition{
		Name:     node.Name,
		Kind:     m.ContractKind(node.ContractKind),
		Abstract: node.Abstract,
	}

	for _, base := range node.BaseContracts {
		contract.Bases = append(contract.Bases, &m.InheritanceSpecifier{Name: base.BaseName.Name})
	}

	for _, sub := range node.Nodes {
		switch sub.NodeType {
		case "FunctionDefinition":
			contract.Nodes = append(contract.Nodes, decodeFunction(sub))
		case "VariableDeclaration":
			contract.Nodes = append(contract.Nodes, decodeVariable(sub))
		}
	}

	return contract
}

func decodeFunction(node rawNode) *m.FunctionDefinition {
	fn := &m.FunctionDefinition{
		Kind:       functionKind(node.Kind),
		Name:       node.Name,
		Visibility: m.Visibility(node.Visibility),
		Mutability: mutability(node.StateMutability),
		Virtual:    node.Virtual,
		Parameters: decodeParams(node.Parameters),
		Returns:    decodeParams(node.ReturnParameters),
	}

	if hasBody(node.Body) {
		fn.Body = &m.Block{}
	}

	return fn
}

func decodeVariable(node rawNode) *m.VariableDeclaration {
	decl := &m.VariableDeclaration{
		Name:            node.Name,
		Visibility:      m.Visibility(node.Visibility),
		Constant:        node.Constant,
		StateVariable:   node.StateVariable,
		StorageLocation: storageLocation(node.StorageLocation),
	}

	if node.TypeDescriptions != nil {
		decl.TypeName = bareTypeName(node.TypeDescriptions.TypeString)
	}

	return decl
}

// typeLocationSuffixes are the data-location decorations solc appends to the
// typeString of reference-typed declarations ("string storage ref",
// "uint256[] memory"). Ordered so the longer storage forms match before the
// bare "storage".
var typeLocationSuffixes = []string{
	" storage ref",
	" storage pointer",
	" storage",
	" memory",
	" calldata",
}

// bareTypeName strips the data location from a solc typeString; the model
// keeps the source form of the type and tracks locations separately.
func bareTypeName(typeString string) string {
	for _, suffix := range typeLocationSuffixes {
		if strings.HasSuffix(typeString, suffix) {
			return strings.TrimSuffix(typeString, suffix)
		}
	}

	return typeString
}

func decodeParams(list *rawParamList) []*m.VariableDeclaration {
	if list == nil || len(list.Parameters) == 0 {
		return nil
	}

	params := make([]*m.VariableDeclaration, 0, len(list.Parameters))
	for _, p := range list.Parameters {
		params = append(params, decodeVariable(p))
	}

	return params
}

func functionKind(kind string) m.FunctionKind {
	switch kind {
	case "constructor":
		return m.FnConstructor
	case "fallback":
		return m.FnFallback
	case "receive":
		return m.FnReceive
	default:
		return m.FnFunction
	}
}

func mutability(s string) m.Mutability {
	if s == "nonpayable" {
		return m.MutNonpayable
	}

	return m.Mutability(s)
}

func storageLocation(s string) string {
	if s == "default" {
		return ""
	}

	return s
}
