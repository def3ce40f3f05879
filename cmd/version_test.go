package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCommandOutput(t *testing.T) {
	cmd := newVersionCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)

	cmd.Run(cmd, nil)

	// Binaries built without module info report unknown; either way the
	// output names this tool.
	assert.Contains(t, out.String(), "solmock version")
}
