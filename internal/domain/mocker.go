package domain

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"
	m "solmock.dev/pkg/solmock/internal/model"
)

// Mocker synthesizes mock contracts from a source catalog. The pipeline is a
// pure function over the immutable catalog, so one Mocker may serve
// concurrent requests without coordination.
type Mocker interface {
	// MockContract synthesizes a mock for one contract. The returned unit is
	// owned by the caller; no reference is retained.
	MockContract(ctx context.Context, catalog m.SourceCatalog, path m.Path, contractName string, opts m.MockOptions) (*m.SourceUnit, error)

	// MockAll synthesizes mocks for every mockable contract declared at
	// path, running up to threads requests in parallel. Results are ordered
	// by contract name.
	MockAll(ctx context.Context, catalog m.SourceCatalog, path m.Path, opts m.MockOptions, threads int) ([]*m.SourceUnit, error)
}

type mocker struct {
	suffix        string
	exposedPrefix string
}

// NewMocker creates a Mocker. Empty suffix or prefix fall back to the
// defaults ("Mock", "exposed").
func NewMocker(suffix, exposedPrefix string) Mocker {
	if suffix == "" {
		suffix = DefaultMockSuffix
	}

	if exposedPrefix == "" {
		exposedPrefix = DefaultExposedPrefix
	}

	return &mocker{suffix: suffix, exposedPrefix: exposedPrefix}
}

func (mk *mocker) MockContract(ctx context.Context, catalog m.SourceCatalog, path m.Path, contractName string, opts m.MockOptions) (*m.SourceUnit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry := catalog.Entry(path)
	if entry == nil {
		return nil, &m.ContractNotFoundError{Path: path, Contract: contractName}
	}

	target, ok := entry.Contracts[contractName]
	if !ok {
		return nil, &m.ContractNotFoundError{Path: path, Contract: contractName}
	}

	resolve := func(name string) (*m.ContractDefinition, error) {
		parent, ok := catalog.Lookup(path, name)
		if !ok {
			return nil, &m.ScopeResolutionError{Path: path, Contract: contractName, Missing: name}
		}

		return parent, nil
	}

	res, err := Flatten(target, resolve)
	if err != nil {
		return nil, err
	}

	cls, err := Classify(target, res, opts)
	if err != nil {
		return nil, err
	}

	slog.Debug("classified members",
		"contract", contractName,
		"parents", len(res.Parents),
		"abstract", len(cls.Abstracts),
		"scripted", len(cls.Scripted),
		"stubbed", len(cls.Stubbed),
	)

	syn := Synthesized{
		Constructor: SynthesizeConstructor(cls.Constructors),
		Exposed:     SynthesizeExposed(res.Flat, mk.exposedPrefix),
		Scripted:    SynthesizeScripted(cls.Scripted),
		Stubs:       SynthesizeStubs(cls.Stubbed),
	}

	return Assemble(entry.Unit, path, target, syn, mk.suffix), nil
}

func (mk *mocker) MockAll(ctx context.Context, catalog m.SourceCatalog, path m.Path, opts m.MockOptions, threads int) ([]*m.SourceUnit, error) {
	entry := catalog.Entry(path)
	if entry == nil {
		return nil, &m.ContractNotFoundError{Path: path}
	}

	names := make([]string, 0, len(entry.Contracts))
	for name, contract := range entry.Contracts {
		if Mockable(contract) {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	if threads < 1 {
		threads = 1
	}

	units := make([]*m.SourceUnit, len(names))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, name := range names {
		i, name := i, name

		group.Go(func() error {
			unit, err := mk.MockContract(groupCtx, catalog, path, name, opts)
			if err != nil {
				return err
			}

			units[i] = unit

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return units, nil
}

// Mockable reports whether a declaration can be mocked. Libraries cannot be
// inherited from, so they are excluded; interfaces and abstract contracts
// are the primary targets.
func Mockable(contract *m.ContractDefinition) bool {
	return contract.Kind != m.KindLibrary
}
