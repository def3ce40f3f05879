package domain

import (
	"sort"

	m "solmock.dev/pkg/solmock/internal/model"
)

// ContractSummary describes one catalog contract for listing purposes.
type ContractSummary struct {
	Path        m.Path
	Name        string
	Kind        m.ContractKind
	Bases       int
	AbstractFns int
	CtorParams  int
	Mockable    bool
}

// Summarize lists the contracts declared by the given paths, sorted by path
// then name. Counts are taken from the declaration itself, not the flattened
// hierarchy, so summarizing never needs scope resolution and cannot fail.
func Summarize(catalog m.SourceCatalog, paths ...m.Path) []ContractSummary {
	if len(paths) == 0 {
		for path := range catalog {
			paths = append(paths, path)
		}
	}

	var summaries []ContractSummary

	for _, path := range paths {
		entry := catalog.Entry(path)
		if entry == nil {
			continue
		}

		for name, contract := range entry.Contracts {
			summary := ContractSummary{
				Path:     path,
				Name:     name,
				Kind:     contract.Kind,
				Bases:    len(contract.Bases),
				Mockable: Mockable(contract),
			}

			if ctor := contract.Constructor(); ctor != nil {
				summary.CtorParams = len(ctor.Parameters)
			}

			for _, node := range contract.Nodes {
				if fn, ok := node.(*m.FunctionDefinition); ok && fn.Kind != m.FnConstructor && fn.IsAbstract() {
					summary.AbstractFns++
				}
			}

			summaries = append(summaries, summary)
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Path != summaries[j].Path {
			return summaries[i].Path < summaries[j].Path
		}

		return summaries[i].Name < summaries[j].Name
	})

	return summaries
}
