package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	m "solmock.dev/pkg/solmock/internal/model"
)

// SolcAdapter abstracts the Solidity compiler invocation that produces the
// compact-JSON ASTs the pipeline consumes.
type SolcAdapter interface {
	// CompileAST compiles the given source files and returns the decoded
	// source units keyed by the path solc reports for them (which includes
	// transitively imported files).
	CompileAST(ctx context.Context, paths ...m.Path) (map[m.Path]*m.SourceUnit, error)
}

// LocalSolcAdapter provides a concrete SolcAdapter using os/exec.
type LocalSolcAdapter struct {
	binary  string
	timeout time.Duration
}

// NewLocalSolcAdapter constructs a LocalSolcAdapter. An empty binary means
// "solc" from PATH; the default timeout is 60s.
func NewLocalSolcAdapter(binary string) *LocalSolcAdapter {
	if binary == "" {
		binary = "solc"
	}

	return &LocalSolcAdapter{
		binary:  binary,
		timeout: 60 * time.Second,
	}
}

// combinedOutput mirrors the shape of `solc --combined-json ast`.
type combinedOutput struct {
	Sources map[string]combinedSource `json:"sources"`
}

type combinedSource struct {
	AST       json.RawMessage `json:"AST"`
	ASTLegacy json.RawMessage `json:"ast"`
}

func (s combinedSource) ast() json.RawMessage {
	if len(s.AST) > 0 {
		return s.AST
	}

	return s.ASTLegacy
}

// CompileAST runs the compiler and decodes every source unit it reports.
func (a *LocalSolcAdapter) CompileAST(ctx context.Context, paths ...m.Path) (map[m.Path]*m.SourceUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	args := []string{"--combined-json", "ast"}
	for _, path := range paths {
		args = append(args, string(path))
	}

	cmd := exec.CommandContext(ctx, a.binary, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s failed: %w\n%s", a.binary, err, strings.TrimSpace(stderr.String()))
	}

	return ParseCombinedJSON(stdout.Bytes())
}

// ParseCombinedJSON decodes a solc combined-json document into source units.
// It is exposed separately so pre-compiled artifacts can be loaded without a
// compiler installed.
func ParseCombinedJSON(data []byte) (map[m.Path]*m.SourceUnit, error) {
	var out combinedOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse combined-json: %w", err)
	}

	if len(out.Sources) == 0 {
		return nil, fmt.Errorf("parse combined-json: no sources")
	}

	units := make(map[m.Path]*m.SourceUnit, len(out.Sources))

	for path, source := range out.Sources {
		raw := source.ast()
		if len(raw) == 0 {
			return nil, fmt.Errorf("parse combined-json: %s has no AST", path)
		}

		unit, err := DecodeSourceUnit(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if unit.AbsolutePath == "" {
			unit.AbsolutePath = m.Path(path)
		}

		units[m.Path(path)] = unit
	}

	return units, nil
}
