package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"solmock.dev/pkg/solmock/internal/adapter"
	"solmock.dev/pkg/solmock/internal/domain"
	m "solmock.dev/pkg/solmock/internal/model"
)

var generateOptionsFlag string
var generateAllFlag bool
var generateDiffFlag bool
var generateStdoutFlag bool
var generateParallelFlag int

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <source> [contract...]",
		Short: "Generate mock contracts",
		Long:  generateLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, m.Path(args[0]), args[1:])
		},
	}
}

// Flags are configured here rather than in newGenerateCmd so the config
// defaults (set in config.go's init) are in place first.
func init() {
	configureGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&generateOptionsFlag, optionsFlagName, "m", "", "YAML file with constructor arguments and scripted returns")
	cmd.Flags().BoolVar(&generateAllFlag, "all", false, "mock every mockable contract in the source")
	cmd.Flags().BoolVar(&generateDiffFlag, "diff", false, "show a diff against existing generated files instead of overwriting")
	cmd.Flags().BoolVar(&generateStdoutFlag, "stdout", false, "print generated code to stdout instead of writing files")
	cmd.Flags().IntVarP(&generateParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers for --all")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}

func runGenerate(cmd *cobra.Command, source m.Path, contracts []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	catalog, err := loadCatalog(ctx, source)
	if err != nil {
		return err
	}

	srcPath, err := resolveSourcePath(catalog, source, contracts)
	if err != nil {
		return err
	}

	opts, err := loadMockOptions()
	if err != nil {
		return err
	}

	if generateAllFlag {
		units, err := mocker.MockAll(ctx, catalog, srcPath, opts, viper.GetInt(parallelConfigKey))
		if err != nil {
			return err
		}

		for _, unit := range units {
			if err := emitUnit(ctx, cmd, srcPath, unit); err != nil {
				return err
			}
		}

		return nil
	}

	if len(contracts) == 0 {
		selected, err := ui.SelectContract(ctx, mockableNames(catalog.Entry(srcPath)))
		if err != nil {
			return err
		}

		contracts = []string{selected}
	}

	threads := viper.GetInt(parallelConfigKey)
	if threads < 1 {
		threads = 1
	}

	units := make([]*m.SourceUnit, len(contracts))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, name := range contracts {
		i, name := i, name

		group.Go(func() error {
			unit, err := mocker.MockContract(groupCtx, catalog, srcPath, name, opts)
			if err != nil {
				return err
			}

			units[i] = unit

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, unit := range units {
		if err := emitUnit(ctx, cmd, srcPath, unit); err != nil {
			return err
		}
	}

	return nil
}

// loadCatalog builds the source catalog either from a pre-compiled
// combined-json artifact or by invoking solc on a .sol file.
func loadCatalog(ctx context.Context, source m.Path) (m.SourceCatalog, error) {
	var (
		units map[m.Path]*m.SourceUnit
		err   error
	)

	if strings.HasSuffix(string(source), ".json") {
		data, readErr := fsAdapter.ReadFile(source)
		if readErr != nil {
			return nil, fmt.Errorf("read artifact: %w", readErr)
		}

		units, err = adapter.ParseCombinedJSON(data)
	} else {
		units, err = solcAdapter.CompileAST(ctx, source)
	}

	if err != nil {
		return nil, err
	}

	return adapter.BuildCatalog(units), nil
}

// resolveSourcePath maps the CLI source argument onto a catalog key. A .sol
// path is its own key; an artifact resolves to its only source, or to the
// source declaring the first requested contract.
func resolveSourcePath(catalog m.SourceCatalog, source m.Path, contracts []string) (m.Path, error) {
	if catalog.Entry(source) != nil {
		return source, nil
	}

	if len(catalog) == 1 {
		for path := range catalog {
			return path, nil
		}
	}

	for _, name := range contracts {
		for path, entry := range catalog {
			if _, ok := entry.Contracts[name]; ok {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("cannot determine source file within %s: name a contract explicitly", source)
}

func loadMockOptions() (m.MockOptions, error) {
	if generateOptionsFlag == "" {
		return m.MockOptions{}, nil
	}

	data, err := fsAdapter.ReadFile(m.Path(generateOptionsFlag))
	if err != nil {
		return m.MockOptions{}, fmt.Errorf("read options: %w", err)
	}

	return m.ParseMockOptions(data)
}

func mockableNames(entry *m.SourceEntry) []string {
	if entry == nil {
		return nil
	}

	var names []string

	for name, contract := range entry.Contracts {
		if domain.Mockable(contract) {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// emitUnit renders one generated unit and routes it to stdout, a diff, or a
// file next to the source (or under --output when set).
func emitUnit(ctx context.Context, cmd *cobra.Command, srcPath m.Path, unit *m.SourceUnit) error {
	data, err := printer.Print(unit)
	if err != nil {
		return err
	}

	mockName := unit.Contracts[0].Name

	if generateStdoutFlag {
		cmd.Print(string(data))
		return nil
	}

	dir := viper.GetString(outputFlagName)
	if dir == "" {
		dir = filepath.Dir(string(srcPath))
	}

	target := m.Path(filepath.Join(dir, mockName+".sol"))

	if generateDiffFlag && fsAdapter.Exists(target) {
		existing, err := fsAdapter.ReadFile(target)
		if err != nil {
			return err
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(existing)),
			B:        difflib.SplitLines(string(data)),
			FromFile: string(target),
			ToFile:   string(target) + " (generated)",
			Context:  3,
		})
		if err != nil {
			return err
		}

		ui.DisplayDiff(ctx, target, diff)

		return nil
	}

	if err := fsAdapter.WriteFile(target, data); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	ui.DisplayGenerated(ctx, mockName, target)

	return nil
}
