// SPDX-License-Identifier: MIT
// Package hub: graph-to-matrix assembly.
//
// File: compile.go
// Role: Compile — walk the finished topology once and emit the model
//       matrices Z, X and Y over the global branch space.
//
// Global branch numbering is fixed by construction order: connection i
// owns branch i, then every virtual port gets one appended branch
// (components in insertion order, ports in declaration order). All
// assembly below is deterministic: only ordered slices are walked, so the
// same build sequence always yields the same model.
//
// Sign convention. Flows are measured in connection direction: V[i] > 0
// means flow runs from the connection's source endpoint to its
// destination. For a port p the orientation factor
//
//	d(p) = +1 when the connection enters the component at p (or p is virtual)
//	d(p) = -1 when it leaves
//
// maps between that global orientation and the component's local one.
// Each internal branch b is anchored at its representative port — the
// lowest-index port observing it — giving the branch the orientation
// sigma(b) = d(rep) * Ag[rep, b], which rewrites every local coefficient
// into global terms.

package hub

import (
	"fmt"

	"github.com/meshub/meshub/expr"
	"github.com/meshub/meshub/matrix"
)

// Compile assembles the model matrices from the current topology.
//
// On success the graph freezes: all later mutations fail with
// ErrGraphFrozen, while Compile itself may be called again and returns an
// equal model. On failure the graph is left open and unchanged.
//
// Returns:
//   - ErrEmptyGraph when no branch exists at all;
//   - ErrPortNotConnected when a component port or boundary node dangles;
//   - ErrOrphanBranch when a branch is observed by no component.
func (g *Graph) Compile() (*Model, error) {
	plan, err := g.planBranches()
	if err != nil {
		return nil, fmt.Errorf("Compile: %w", err)
	}

	n := len(plan.branches)
	referenced := make([]bool, n)
	blocks := make([]*matrix.Dense, 0, 2*len(g.compOrder))

	for _, name := range g.compOrder {
		inst := g.comps[name]
		charBlock, portBlock, err := g.componentBlocks(name, inst, plan, referenced)
		if err != nil {
			return nil, fmt.Errorf("Compile: %w", err)
		}
		blocks = append(blocks, charBlock, portBlock)
	}

	for i, ref := range referenced {
		if !ref {
			return nil, fmt.Errorf("Compile: branch %d (%s): %w", i, plan.branches[i].Label(), ErrOrphanBranch)
		}
	}

	z, err := matrix.VStack(blocks...)
	if err != nil {
		return nil, fmt.Errorf("Compile: %w", err)
	}
	if z.IsEmpty() {
		// No components at all; give Z its proper width anyway.
		z = matrix.Must(matrix.New(0, n))
	}

	x, y := g.selectorMatrices(plan, n)

	g.frozen = true
	return newModel(g.name, z, x, y, plan, g.inputNames(), g.outputNames()), nil
}

// branchPlan is the fixed global numbering every assembly step works from.
type branchPlan struct {
	branches []Branch
	index    map[Endpoint]int // both endpoints of every branch -> global index
}

// planBranches numbers the global branches and verifies that every
// non-virtual port and every boundary node is wired.
func (g *Graph) planBranches() (*branchPlan, error) {
	plan := &branchPlan{index: make(map[Endpoint]int, 2*len(g.conns))}

	for i, c := range g.conns {
		plan.branches = append(plan.branches, Branch{Index: i, From: c.from, To: c.to})
		plan.index[c.from] = i
		plan.index[c.to] = i
	}
	for _, name := range g.compOrder {
		for _, p := range g.comps[name].ports {
			if !p.Virtual {
				continue
			}
			ep := Endpoint{Node: name, Port: p.Name}
			idx := len(plan.branches)
			plan.branches = append(plan.branches, Branch{Index: idx, From: ep, Virtual: true})
			plan.index[ep] = idx
		}
	}

	if len(plan.branches) == 0 {
		return nil, ErrEmptyGraph
	}

	for _, name := range g.compOrder {
		for _, p := range g.comps[name].ports {
			if p.Virtual {
				continue
			}
			if _, ok := plan.index[Endpoint{Node: name, Port: p.Name}]; !ok {
				return nil, fmt.Errorf("port %q of %q: %w", p.Name, name, ErrPortNotConnected)
			}
		}
	}
	for _, name := range g.ioOrder {
		if _, ok := plan.index[Endpoint{Node: name, Port: ""}]; !ok {
			return nil, fmt.Errorf("boundary node %q: %w", name, ErrPortNotConnected)
		}
	}
	return plan, nil
}

// componentBlocks emits one component's two row blocks over the global
// branch space: its characteristic laws and its port ties.
func (g *Graph) componentBlocks(name string, inst *instance, plan *branchPlan, referenced []bool) (charBlock, portBlock *matrix.Dense, err error) {
	local := inst.ag.Cols()
	n := len(plan.branches)

	// Orientation of each port relative to the global flow direction.
	dir := make([]int, len(inst.ports))
	gport := make([]int, len(inst.ports))
	for pi, p := range inst.ports {
		ep := Endpoint{Node: name, Port: p.Name}
		gi := plan.index[ep] // guaranteed by planBranches
		gport[pi] = gi
		if p.Virtual || plan.branches[gi].To == ep {
			dir[pi] = 1
		} else {
			dir[pi] = -1
		}
	}

	// Anchor every internal branch at its representative port and derive
	// the branch orientation sigma.
	globalOf := make([]int, local)
	sigma := make([]int, local)
	for b := 0; b < local; b++ {
		rep := -1
		for pi := range inst.ports {
			if inst.agAt(pi, b) != 0 {
				rep = pi
				break
			}
		}
		if rep < 0 {
			return nil, nil, fmt.Errorf("internal branch %d of %q: %w", b, name, ErrOrphanBranch)
		}
		globalOf[b] = gport[rep]
		sigma[b] = dir[rep] * inst.agAt(rep, b)
		referenced[gport[rep]] = true
	}

	// Characteristic block: the device physics, columns remapped to
	// global indices and signs lifted by sigma.
	charBlock = matrix.Must(matrix.New(inst.hg.Rows(), n))
	for k := 0; k < inst.hg.Rows(); k++ {
		for b := 0; b < local; b++ {
			v, _ := inst.hg.At(k, b)
			if v.IsZero() {
				continue
			}
			if sigma[b] < 0 {
				v = expr.Neg(v)
			}
			if err := charBlock.AddAt(k, globalOf[b], v); err != nil {
				return nil, nil, err
			}
		}
	}

	// Port-tie block: one row per port equating the port's own branch
	// with the internal branches it observes. For a branch's
	// representative port the row cancels to zero; for any further
	// observer it pins the flow-through equality.
	portBlock = matrix.Must(matrix.New(len(inst.ports), n))
	for pi := range inst.ports {
		for b := 0; b < local; b++ {
			a := inst.agAt(pi, b)
			if a == 0 {
				continue
			}
			referenced[gport[pi]] = true
			if err := portBlock.AddAt(pi, globalOf[b], expr.Num(float64(a*sigma[b]))); err != nil {
				return nil, nil, err
			}
		}
		if err := portBlock.AddAt(pi, gport[pi], expr.Num(float64(-dir[pi]))); err != nil {
			return nil, nil, err
		}
	}
	return charBlock, portBlock, nil
}

// selectorMatrices builds X and Y: unit selectors picking the boundary
// branches out of the global flow vector, rows in boundary-node
// insertion order.
func (g *Graph) selectorMatrices(plan *branchPlan, n int) (x, y *matrix.Dense) {
	inputs := g.inputNames()
	outputs := g.outputNames()
	x = matrix.Must(matrix.New(len(inputs), n))
	y = matrix.Must(matrix.New(len(outputs), n))
	for i, name := range inputs {
		// Errors are impossible here: indices come from the plan.
		_ = x.Set(i, plan.index[Endpoint{Node: name}], expr.Num(1))
	}
	for i, name := range outputs {
		_ = y.Set(i, plan.index[Endpoint{Node: name}], expr.Num(1))
	}
	return x, y
}

func (g *Graph) inputNames() []string {
	var out []string
	for _, name := range g.ioOrder {
		if g.ios[name] == Input {
			out = append(out, name)
		}
	}
	return out
}

func (g *Graph) outputNames() []string {
	var out []string
	for _, name := range g.ioOrder {
		if g.ios[name] == Output {
			out = append(out, name)
		}
	}
	return out
}
