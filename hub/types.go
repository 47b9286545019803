// SPDX-License-Identifier: MIT
// Package hub: shared value types for topology construction.
//
//   - Direction — orientation of a boundary node (Input / Output).
//   - Port      — a named attachment point declared by a component.
//   - Endpoint  — one end of a connection (node name + port name).
//   - Params    — loosely typed constructor parameters with coercion
//     helpers into symbolic expr.Value form.
//
// All types here are plain values; copying them is safe and cheap.

package hub

import (
	"fmt"

	"github.com/meshub/meshub/expr"
)

// Direction orients a boundary node relative to the hub: an Input node
// feeds a carrier into the system, an Output node draws one out.
// The zero value is invalid so that a Direction can never be forgotten.
type Direction uint8

const (
	// Input marks a boundary node that sources flow into the hub.
	Input Direction = iota + 1
	// Output marks a boundary node that sinks flow out of the hub.
	Output
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Valid reports whether d is one of the two declared directions.
func (d Direction) Valid() bool { return d == Input || d == Output }

// ParseDirection maps the textual form used in configuration files
// ("input", "output") onto a Direction.
//
// Returns:
//   - ErrInvalidDirection for any other string.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "input":
		return Input, nil
	case "output":
		return Output, nil
	default:
		return 0, fmt.Errorf("ParseDirection(%q): %w", s, ErrInvalidDirection)
	}
}

// Port is an attachment point declared by a component. Index is the row
// the port occupies in the component's port-branch matrix; ports are
// reported in index order. A Virtual port is not connectable: it exists
// to expose an internal state variable as a branch of its own.
type Port struct {
	Name    string
	Index   int
	Virtual bool
}

// Endpoint addresses one end of a connection. For component nodes Port
// names a declared port; boundary nodes carry a single anonymous port,
// stored as the empty string.
type Endpoint struct {
	Node string
	Port string
}

// String renders "node.port", or just the node name for the anonymous
// boundary port.
func (e Endpoint) String() string {
	if e.Port == "" {
		return e.Node
	}
	return e.Node + "." + e.Port
}

// Params carries the constructor parameters of a component instance.
// Values may be numeric (any Go integer or float type), a string holding
// a symbolic expression ("eta_boiler", "1/eta_d"), or an expr.Value
// directly. Component factories pull what they need through the typed
// accessors below.
type Params map[string]any

// Value fetches key and coerces it to a symbolic value.
//
// Returns:
//   - ErrMissingParam when the key is absent (or the map is nil);
//   - ErrBadParam when the value has an unsupported type or the string
//     form does not parse.
func (p Params) Value(key string) (expr.Value, error) {
	raw, ok := p[key]
	if !ok {
		return expr.Value{}, fmt.Errorf("param %q: %w", key, ErrMissingParam)
	}
	v, err := coerceValue(raw)
	if err != nil {
		return expr.Value{}, fmt.Errorf("param %q: %w", key, err)
	}
	return v, nil
}

// ValueOr behaves like Value but substitutes def when the key is absent.
// A present-but-malformed value still fails.
func (p Params) ValueOr(key string, def expr.Value) (expr.Value, error) {
	if _, ok := p[key]; !ok {
		return def, nil
	}
	return p.Value(key)
}

// StringList fetches key as a list of strings ([]string or []any holding
// strings). An absent key yields a nil slice and no error.
//
// Returns:
//   - ErrBadParam when the value is not a string list.
func (p Params) StringList(key string) ([]string, error) {
	raw, ok := p[key]
	if !ok {
		return nil, nil
	}
	switch vs := raw.(type) {
	case []string:
		out := make([]string, len(vs))
		copy(out, vs)
		return out, nil
	case []any:
		out := make([]string, 0, len(vs))
		for _, item := range vs {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("param %q: element %T: %w", key, item, ErrBadParam)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("param %q: got %T, want string list: %w", key, raw, ErrBadParam)
	}
}

// coerceValue folds the supported parameter representations into a single
// symbolic value. Strings run through the expression parser so that a
// configuration file can write either 0.9 or "eta_boiler".
func coerceValue(raw any) (expr.Value, error) {
	switch v := raw.(type) {
	case expr.Value:
		return v, nil
	case float64:
		return expr.Num(v), nil
	case float32:
		return expr.Num(float64(v)), nil
	case int:
		return expr.Num(float64(v)), nil
	case int32:
		return expr.Num(float64(v)), nil
	case int64:
		return expr.Num(float64(v)), nil
	case uint:
		return expr.Num(float64(v)), nil
	case uint64:
		return expr.Num(float64(v)), nil
	case string:
		parsed, err := expr.Parse(v)
		if err != nil {
			return expr.Value{}, fmt.Errorf("%w: %v", ErrBadParam, err)
		}
		return parsed, nil
	default:
		return expr.Value{}, fmt.Errorf("got %T: %w", raw, ErrBadParam)
	}
}
