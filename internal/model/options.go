package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ScriptEntry describes one step of a scripted return sequence: the literal
// to return and how many consecutive calls it covers (0 counts as 1).
type ScriptEntry struct {
	Value string `yaml:"value"`
	Times int    `yaml:"times,omitempty"`
}

// UnmarshalYAML accepts both the mapping form ({value: 5, times: 2}) and a
// bare scalar shorthand (5).
func (s *ScriptEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Value = node.Value
		s.Times = 0

		return nil
	}

	type plain ScriptEntry

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*s = ScriptEntry(p)

	return nil
}

// MockOptions is the caller-supplied configuration for one mock request.
// Constructors maps an ancestor contract name to the ordered literal
// arguments forwarded to its constructor. Scripted maps a function name to
// the return sequence its override plays back.
type MockOptions struct {
	Constructors map[string][]string      `yaml:"constructors"`
	Scripted     map[string][]ScriptEntry `yaml:"scripted"`
}

// ConstructorArgs returns the literal arguments supplied for an ancestor.
func (o MockOptions) ConstructorArgs(ancestor string) ([]string, bool) {
	args, ok := o.Constructors[ancestor]
	return args, ok
}

// Script returns the scripted sequence for a function name, if any.
func (o MockOptions) Script(name string) ([]ScriptEntry, bool) {
	if name == "" {
		return nil, false
	}

	entries, ok := o.Scripted[name]

	return entries, ok
}

// ParseMockOptions decodes a YAML options document.
func ParseMockOptions(data []byte) (MockOptions, error) {
	var opts MockOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return MockOptions{}, fmt.Errorf("parse mock options: %w", err)
	}

	return opts, nil
}
