package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"solmock.dev/pkg/solmock/internal/domain"
	m "solmock.dev/pkg/solmock/internal/model"
)

// ErrNoContractSelected is returned when a target contract is required but
// none was named and no interactive selection is possible.
var ErrNoContractSelected = errors.New("no contract selected: pass a contract name")

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCatalog renders one table row per contract.
func (s *SimpleUI) DisplayCatalog(ctx context.Context, summaries []domain.ContractSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderCatalogTable(summaries))

	return nil
}

func renderCatalogTable(summaries []domain.ContractSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Contract", "Kind", "Abstract Fns", "Ctor Params"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	mockable := 0

	for _, summary := range summaries {
		name := summary.Name
		if !summary.Mockable {
			name += " (not mockable)"
		} else {
			mockable++
		}

		table.Append([]string{
			string(summary.Path),
			name,
			string(summary.Kind),
			fmt.Sprintf("%d", summary.AbstractFns),
			fmt.Sprintf("%d", summary.CtorParams),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(summaries)),
		fmt.Sprintf("Mockable %d", mockable),
		"", "", "",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayGenerated reports one written mock file.
func (s *SimpleUI) DisplayGenerated(ctx context.Context, target string, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Generated mock for %s: %s\n", target, path)
}

// DisplayDiff prints the diff as-is.
func (s *SimpleUI) DisplayDiff(ctx context.Context, path m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("%s is up to date\n", path)
		return
	}

	s.printf("%s", diff)
}

// SelectContract cannot prompt; it fails unless exactly one candidate exists.
func (s *SimpleUI) SelectContract(ctx context.Context, candidates []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(candidates) == 1 {
		return candidates[0], nil
	}

	return "", ErrNoContractSelected
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
