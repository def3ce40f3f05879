package model

import "fmt"

// ContractNotFoundError reports that the requested contract is not declared
// by the file at Path (or that the path itself is not in the catalog).
type ContractNotFoundError struct {
	Path     Path
	Contract string
}

func (e *ContractNotFoundError) Error() string {
	if e.Contract == "" {
		return fmt.Sprintf("no contracts found in %s", e.Path)
	}

	return fmt.Sprintf("contract %q not found in %s", e.Contract, e.Path)
}

// ScopeResolutionError reports that a base-contract name reachable from the
// target has no entry in the file's resolution scope. It usually means a
// dependency was not loaded into the catalog.
type ScopeResolutionError struct {
	Path     Path
	Contract string
	Missing  string
}

func (e *ScopeResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve base contract %q while flattening %q (%s): missing import?", e.Missing, e.Contract, e.Path)
}

// MissingConstructorArgsError reports that an ancestor constructor requires
// arguments that the mock options do not supply. Argument-less defaults are
// rejected, never assumed.
type MissingConstructorArgsError struct {
	Contract   string
	Ancestor   string
	ParamCount int
}

func (e *MissingConstructorArgsError) Error() string {
	return fmt.Sprintf("mocking %q: constructor of %q takes %d argument(s) but none were supplied in options", e.Contract, e.Ancestor, e.ParamCount)
}
