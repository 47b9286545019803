// SPDX-License-Identifier: MIT
// Package config: document schema, decoding and validation.

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the package-wide validator instance.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Hub is the root of a topology document. Section order in the file is
// free; Build replays components, nodes and connections each in list
// order.
type Hub struct {
	Name        string       `yaml:"name"`
	Components  []Component  `yaml:"components" validate:"omitempty,dive"`
	Nodes       []Node       `yaml:"nodes" validate:"omitempty,dive"`
	Connections []Connection `yaml:"connections" validate:"omitempty,dive"`
}

// Component declares one instance: its graph name, registry type tag and
// constructor parameters.
type Component struct {
	Name   string         `yaml:"name" validate:"required"`
	Type   string         `yaml:"type" validate:"required"`
	Params map[string]any `yaml:"params"`
}

// Node declares one boundary node.
type Node struct {
	Name      string `yaml:"name" validate:"required"`
	Direction string `yaml:"direction" validate:"required,oneof=input output"`
}

// Connection wires from/from_port to to/to_port. Port fields stay empty
// for boundary endpoints.
type Connection struct {
	From     string `yaml:"from" validate:"required"`
	FromPort string `yaml:"from_port"`
	To       string `yaml:"to" validate:"required"`
	ToPort   string `yaml:"to_port"`
}

// Parse decodes and schema-checks a YAML document.
//
// Returns:
//   - ErrDecode when the bytes are not valid YAML for the schema;
//   - ErrSchema when a required field is missing or malformed.
func Parse(data []byte) (*Hub, error) {
	var h Hub
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("Parse: %v: %w", err, ErrDecode)
	}
	if err := validate.Struct(&h); err != nil {
		return nil, fmt.Errorf("Parse: %v: %w", formatValidationError(err), ErrSchema)
	}
	return &h, nil
}

// Load reads path and parses it.
func Load(path string) (*Hub, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	h, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	return h, nil
}

// formatValidationError reduces a validator error list to its first
// entry in field/tag form.
func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", e.Namespace())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s]", e.Namespace(), e.Param())
	default:
		return fmt.Errorf("%s: fails %q", e.Namespace(), e.Tag())
	}
}
