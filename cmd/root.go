// Package cmd provides the root command and CLI setup for solmock.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"solmock.dev/pkg/solmock/internal/adapter"
	"solmock.dev/pkg/solmock/internal/controller"
	"solmock.dev/pkg/solmock/internal/domain"
	m "solmock.dev/pkg/solmock/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var solcAdapter adapter.SolcAdapter
var printer adapter.Printer
var mocker domain.Mocker
var ui controller.UI

// outputDirFlag is a root-level flag naming the directory mocks are written
// to; empty means next to the original source.
var outputDirFlag string

// suffixFlag overrides the mock name suffix.
var suffixFlag string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	solcAdapter = adapter.NewLocalSolcAdapter(viper.GetString(solcBinaryConfigKey))
	printer = adapter.NewSolidityPrinter()
	mocker = domain.NewMocker(viper.GetString(suffixConfigKey), viper.GetString(exposedPrefixConfigKey))

	if controller.IsTTY(os.Stdout) {
		ui = controller.NewTUI(rootCmd)
	} else {
		ui = controller.NewSimpleUI(rootCmd)
	}
}

const sourceArgHelp = `Sources may be given two ways:
  - Token.sol           compile with solc (--combined-json ast)
  - Token.ast.json      load a pre-compiled solc combined-json artifact`

const rootLongDescription = `Solmock generates mock variants of Solidity contracts for testing: it
flattens the inheritance chain of a target contract, forwards base
constructor arguments, exposes internal members, scripts selected abstract
functions with fixed return sequences and stubs the rest, so the result
always compiles as a concrete contract.

` + sourceArgHelp

const generateLongDescription = `Generate a mock contract for a target declared in the given source.

` + sourceArgHelp

const listLongDescription = `List the contracts declared by the given sources, with their abstract
function and constructor parameter counts.

` + sourceArgHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solmock",
		Short: "Solidity mock contract generator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for generated mocks (default: next to the source)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&suffixFlag, suffixFlagName, viper.GetString(suffixConfigKey), "suffix appended to mock contract names")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(suffixFlagName), suffixConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
