package adapter

import (
	"path"

	m "solmock.dev/pkg/solmock/internal/model"
)

// BuildCatalog turns decoded source units into a SourceCatalog. Each entry's
// scope covers its own contracts plus everything visible through its imports,
// transitively, so one entry's scope is sufficient to resolve the whole
// inheritance chain of any contract it declares.
func BuildCatalog(units map[m.Path]*m.SourceUnit) m.SourceCatalog {
	catalog := make(m.SourceCatalog, len(units))

	for unitPath, unit := range units {
		entry := &m.SourceEntry{
			Unit:      unit,
			Contracts: make(map[string]*m.ContractDefinition, len(unit.Contracts)),
		}
		for _, contract := range unit.Contracts {
			entry.Contracts[contract.Name] = contract
		}

		catalog[unitPath] = entry
	}

	for unitPath := range catalog {
		catalog[unitPath].Scope = buildScope(catalog, units, unitPath, map[m.Path]bool{})
	}

	return catalog
}

// buildScope collects name -> defining-path bindings reachable from unitPath.
// Own declarations shadow imported ones; earlier imports shadow later ones.
// The visited set keeps import cycles from recursing forever.
func buildScope(catalog m.SourceCatalog, units map[m.Path]*m.SourceUnit, unitPath m.Path, visited map[m.Path]bool) map[string]m.Path {
	scope := map[string]m.Path{}
	if visited[unitPath] {
		return scope
	}

	visited[unitPath] = true

	unit, ok := units[unitPath]
	if !ok {
		return scope
	}

	for _, contract := range unit.Contracts {
		scope[contract.Name] = unitPath
	}

	for _, imp := range unit.Imports {
		target := resolveImport(units, unitPath, imp)
		if target == "" {
			continue
		}

		for name, defPath := range buildScope(catalog, units, target, visited) {
			if _, exists := scope[name]; !exists {
				scope[name] = defPath
			}
		}
	}

	return scope
}

// resolveImport maps an import directive onto a catalog key, preferring the
// compiler-resolved absolute path and falling back to resolving the source
// form against the importing file's directory.
func resolveImport(units map[m.Path]*m.SourceUnit, from m.Path, imp *m.ImportDirective) m.Path {
	if imp.AbsolutePath != "" {
		if _, ok := units[imp.AbsolutePath]; ok {
			return imp.AbsolutePath
		}
	}

	relative := m.Path(path.Join(path.Dir(string(from)), imp.File))
	if _, ok := units[relative]; ok {
		return relative
	}

	if _, ok := units[m.Path(imp.File)]; ok {
		return m.Path(imp.File)
	}

	return ""
}
