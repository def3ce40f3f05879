// Package controller provides the user-facing output and selection layer for
// the mock generator.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	"solmock.dev/pkg/solmock/internal/domain"
	m "solmock.dev/pkg/solmock/internal/model"
)

// UI defines the interface for presenting catalog information and resolving
// an ambiguous target interactively. Implementations can use different
// output methods (simple text, TUI).
type UI interface {
	// DisplayCatalog renders contract summaries for the list command.
	DisplayCatalog(ctx context.Context, summaries []domain.ContractSummary) error

	// DisplayGenerated reports one written mock file.
	DisplayGenerated(ctx context.Context, target string, path m.Path)

	// DisplayDiff shows a unified diff against an existing generated file.
	DisplayDiff(ctx context.Context, path m.Path, diff string)

	// SelectContract resolves which contract to mock when the caller did not
	// name one. Non-interactive implementations must return an error.
	SelectContract(ctx context.Context, candidates []string) (string, error)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
