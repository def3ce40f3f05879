package model

// SourceEntry ties one parsed source file to the contracts it defines and
// its name-resolution scope (contract name -> defining file). Entries are
// built once by the catalog builder and never mutated afterwards, so a
// catalog may be shared across concurrent mock requests.
type SourceEntry struct {
	Unit      *SourceUnit
	Contracts map[string]*ContractDefinition
	Scope     map[string]Path
}

// SourceCatalog maps a file path to its entry.
type SourceCatalog map[Path]*SourceEntry

// Entry returns the entry for path, or nil when the path is unknown.
func (c SourceCatalog) Entry(path Path) *SourceEntry {
	return c[path]
}

// Lookup resolves a contract name through the scope of the file at path.
// The second return reports whether the name resolved to a declaration.
func (c SourceCatalog) Lookup(path Path, name string) (*ContractDefinition, bool) {
	entry, ok := c[path]
	if !ok {
		return nil, false
	}

	defPath, ok := entry.Scope[name]
	if !ok {
		return nil, false
	}

	defEntry, ok := c[defPath]
	if !ok {
		return nil, false
	}

	contract, ok := defEntry.Contracts[name]

	return contract, ok
}
