// SPDX-License-Identifier: MIT
// Package hub: the immutable compiled model.

package hub

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/meshub/meshub/matrix"
)

// Branch is one entry of the global branch table. Connection branches
// carry both endpoints; a virtual branch carries only the owning port in
// From, with Virtual set.
type Branch struct {
	Index   int
	From    Endpoint
	To      Endpoint
	Virtual bool
}

// Label renders the human-readable branch name used in reports and
// diagnostics: "boiler1_heat_out_to_heat_demand", or the owning port path
// for a virtual branch.
func (b Branch) Label() string {
	if b.Virtual {
		return endpointLabel(b.From)
	}
	return endpointLabel(b.From) + "_to_" + endpointLabel(b.To)
}

func endpointLabel(e Endpoint) string {
	if e.Port == "" {
		return e.Node
	}
	return e.Node + "_" + e.Port
}

// Model is the immutable result of a successful Compile: the matrices
//
//	Z * V = 0        all balance and conversion laws
//	V_in  = X * V    boundary inputs selected from the flow vector
//	V_out = Y * V    boundary outputs selected from the flow vector
//
// over the global flow vector V (one entry per branch), plus the branch
// table that gives every column its meaning. Models are safe for
// concurrent use; matrix accessors return defensive clones so no caller
// can reach the shared state.
type Model struct {
	id       uuid.UUID
	name     string
	z, x, y  *matrix.Dense
	branches []Branch
	byPort   map[Endpoint]int
	inputs   []string
	outputs  []string
}

// newModel freezes the assembly result into a Model and derives its
// content-addressed identity.
func newModel(name string, z, x, y *matrix.Dense, plan *branchPlan, inputs, outputs []string) *Model {
	byPort := make(map[Endpoint]int, len(plan.index))
	for ep, idx := range plan.index {
		byPort[ep] = idx
	}
	m := &Model{
		name:     name,
		z:        z,
		x:        x,
		y:        y,
		branches: append([]Branch(nil), plan.branches...),
		byPort:   byPort,
		inputs:   inputs,
		outputs:  outputs,
	}
	m.id = m.fingerprint()
	return m
}

// ID returns the model's content-addressed identity: two models with the
// same name, branch table and matrices share the same ID.
func (m *Model) ID() uuid.UUID { return m.id }

// Name returns the hub name the model was compiled under.
func (m *Model) Name() string { return m.name }

// BranchCount returns the number of global branches (the length of V).
func (m *Model) BranchCount() int { return len(m.branches) }

// Z returns a clone of the constraint matrix.
func (m *Model) Z() *matrix.Dense { return m.z.Clone() }

// X returns a clone of the input selector matrix.
func (m *Model) X() *matrix.Dense { return m.x.Clone() }

// Y returns a clone of the output selector matrix.
func (m *Model) Y() *matrix.Dense { return m.y.Clone() }

// Branches returns a copy of the global branch table in index order.
func (m *Model) Branches() []Branch {
	return append([]Branch(nil), m.branches...)
}

// BranchAt returns the branch at index i.
//
// Returns:
//   - ErrUnknownBranch when i is out of range.
func (m *Model) BranchAt(i int) (Branch, error) {
	if i < 0 || i >= len(m.branches) {
		return Branch{}, fmt.Errorf("BranchAt(%d): %d branches: %w", i, len(m.branches), ErrUnknownBranch)
	}
	return m.branches[i], nil
}

// PortBranch resolves the global branch index a node's port is attached
// to. Boundary nodes use the anonymous port "". This is the hook an
// optimisation layer uses to place additional constraints on specific
// flows after compilation.
//
// Returns:
//   - ErrUnknownBranch when no branch touches that endpoint.
func (m *Model) PortBranch(node, port string) (int, error) {
	idx, ok := m.byPort[Endpoint{Node: node, Port: port}]
	if !ok {
		return 0, fmt.Errorf("PortBranch(%q, %q): %w", node, port, ErrUnknownBranch)
	}
	return idx, nil
}

// Inputs lists the Input boundary node names in X row order.
func (m *Model) Inputs() []string {
	return append([]string(nil), m.inputs...)
}

// Outputs lists the Output boundary node names in Y row order.
func (m *Model) Outputs() []string {
	return append([]string(nil), m.outputs...)
}

// Equal reports whether two models are structurally identical: same
// name, branch table, boundary ordering and matrices. Symbolic entries
// compare structurally, so eta*2 and 2*eta are equal but eta+1 and 1+eta
// only through canonical ordering.
func (m *Model) Equal(other *Model) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.name != other.name ||
		len(m.branches) != len(other.branches) ||
		len(m.inputs) != len(other.inputs) ||
		len(m.outputs) != len(other.outputs) {
		return false
	}
	for i := range m.branches {
		if m.branches[i] != other.branches[i] {
			return false
		}
	}
	for i := range m.inputs {
		if m.inputs[i] != other.inputs[i] {
			return false
		}
	}
	for i := range m.outputs {
		if m.outputs[i] != other.outputs[i] {
			return false
		}
	}
	return m.z.Equal(other.z) && m.x.Equal(other.x) && m.y.Equal(other.y)
}

// fingerprint derives a deterministic UUID from everything Equal
// compares. SHA-1 name-based UUIDs keep the identity stable across
// processes and platforms.
func (m *Model) fingerprint() uuid.UUID {
	var sb strings.Builder
	sb.WriteString("meshub:model:")
	sb.WriteString(m.name)
	sb.WriteString("|in:")
	sb.WriteString(strings.Join(m.inputs, ","))
	sb.WriteString("|out:")
	sb.WriteString(strings.Join(m.outputs, ","))
	sb.WriteString("|branches:")
	for _, b := range m.branches {
		fmt.Fprintf(&sb, "%d=%s.%s>%s.%s/%t;", b.Index, b.From.Node, b.From.Port, b.To.Node, b.To.Port, b.Virtual)
	}
	fmt.Fprintf(&sb, "|Z:%dx%d:%s", m.z.Rows(), m.z.Cols(), m.z.String())
	fmt.Fprintf(&sb, "|X:%dx%d:%s", m.x.Rows(), m.x.Cols(), m.x.String())
	fmt.Fprintf(&sb, "|Y:%dx%d:%s", m.y.Rows(), m.y.Cols(), m.y.String())
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(sb.String()))
}
