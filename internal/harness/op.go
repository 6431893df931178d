package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Kind string

const (
	OpPut      Kind = "put"
	OpRemove   Kind = "remove"
	OpGet      Kind = "get"
	OpContains Kind = "contains"
)

// Op is one step of a script.  On get and contains, Absent asserts the key
// is missing and Expect asserts it is present, with that value for get.
type Op struct {
	Kind   Kind    `yaml:"op"`
	Key    string  `yaml:"key"`
	Value  string  `yaml:"value,omitempty"`
	Expect *string `yaml:"expect,omitempty"`
	Absent bool    `yaml:"absent,omitempty"`
}

func (op Op) String() string {
	if op.Kind == OpPut {
		return fmt.Sprintf("%s(%q, %q)", op.Kind, op.Key, op.Value)
	}
	return fmt.Sprintf("%s(%q)", op.Kind, op.Key)
}

// Script is a named sequence of operations with optional checks on the
// final state.
type Script struct {
	Name       string   `yaml:"name"`
	Ops        []Op     `yaml:"ops"`
	ExpectSize *int     `yaml:"expect_size,omitempty"`
	ExpectKeys []string `yaml:"expect_keys,omitempty"`
}

func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, op := range script.Ops {
		switch op.Kind {
		case OpPut, OpRemove, OpGet, OpContains:
		default:
			return nil, fmt.Errorf("script %q op %d: %w: %q", script.Name, i, ErrUnknownOp, op.Kind)
		}
	}
	return &script, nil
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return nil, err
	}
	if script.Name == "" {
		script.Name = path
	}
	return script, nil
}
