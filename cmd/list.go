package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"solmock.dev/pkg/solmock/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <source>...",
		Short: "List contracts and their mockable surface",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var summaries []domain.ContractSummary

			for _, source := range parsePaths(args) {
				catalog, err := loadCatalog(ctx, source)
				if err != nil {
					return err
				}

				summaries = append(summaries, domain.Summarize(catalog)...)
			}

			return ui.DisplayCatalog(ctx, summaries)
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
