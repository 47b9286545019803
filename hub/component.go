// SPDX-License-Identifier: MIT
// Package hub: the component contract and instance-time validation.

package hub

import (
	"fmt"

	"github.com/meshub/meshub/matrix"
)

// Component is the contract every energy converter, storage or routing
// element fulfils. Implementations live outside this package (see the
// catalog package for the built-in set); the hub only ever consumes this
// interface.
//
// A component describes itself through two matrices over its local branch
// space, the flows internal to the device:
//
//   - PortBranchMatrix (Ag): rows follow Ports() order, one column per
//     local branch. Entry (p, b) is +1 when port p takes branch b into the
//     component, -1 when it emits it, 0 when the port does not observe the
//     branch. The sign of a port's row also fixes which way it may be
//     connected.
//   - CharacteristicMatrix (Hg): the device physics, one row per coupling
//     law over the same columns. Entries may be symbolic. A component with
//     no internal law (a junction) returns an empty matrix with the right
//     column count.
//
// Both methods must be pure: same instance, same matrices, no side
// effects. The graph captures them once, at AddComponent.
type Component interface {
	// Name returns the instance name the component was created with.
	Name() string

	// TypeTag returns the registry tag of the component's kind.
	TypeTag() string

	// Ports lists the declared ports in index order.
	Ports() []Port

	// PortBranchMatrix returns Ag as described above.
	PortBranchMatrix() *matrix.Dense

	// CharacteristicMatrix returns Hg as described above.
	CharacteristicMatrix() *matrix.Dense
}

// instance is the graph-side record of one added component: the interface
// value plus validated, captured copies of everything Compile needs.
type instance struct {
	comp    Component
	ports   []Port
	portIdx map[string]int // port name -> index
	ag      *matrix.Dense
	hg      *matrix.Dense
	sign    []int // per port: +1 intake, -1 emit, 0 unobserving
}

// newInstance captures and validates a freshly constructed component.
// Every structural rule is checked here so that Compile can trust the
// stored matrices unconditionally.
func newInstance(comp Component) (*instance, error) {
	ports := comp.Ports()
	if len(ports) == 0 {
		return nil, fmt.Errorf("component declares no ports: %w", ErrDimensionMismatch)
	}
	ag := comp.PortBranchMatrix()
	if ag == nil {
		return nil, fmt.Errorf("nil port-branch matrix: %w", ErrDimensionMismatch)
	}
	hg := comp.CharacteristicMatrix()
	if hg == nil {
		return nil, fmt.Errorf("nil characteristic matrix: %w", ErrDimensionMismatch)
	}
	if ag.Rows() != len(ports) {
		return nil, fmt.Errorf("port-branch matrix has %d rows for %d ports: %w",
			ag.Rows(), len(ports), ErrDimensionMismatch)
	}
	if hg.Cols() != ag.Cols() && !(hg.Rows() == 0 && hg.Cols() == 0) {
		return nil, fmt.Errorf("characteristic matrix spans %d branches, port-branch matrix %d: %w",
			hg.Cols(), ag.Cols(), ErrDimensionMismatch)
	}

	portIdx := make(map[string]int, len(ports))
	for i, p := range ports {
		if p.Name == "" {
			return nil, fmt.Errorf("port %d: %w", i, ErrEmptyName)
		}
		if p.Index != i {
			return nil, fmt.Errorf("port %q declares index %d at position %d: %w",
				p.Name, p.Index, i, ErrDimensionMismatch)
		}
		if _, dup := portIdx[p.Name]; dup {
			return nil, fmt.Errorf("port %q: %w", p.Name, ErrDuplicateName)
		}
		portIdx[p.Name] = i
	}

	sign, err := portSigns(ag)
	if err != nil {
		return nil, err
	}

	inst := &instance{
		comp:    comp,
		ports:   append([]Port(nil), ports...),
		portIdx: portIdx,
		ag:      ag.Clone(),
		hg:      hg.Clone(),
		sign:    sign,
	}
	return inst, nil
}

// portSigns validates that every Ag entry is a unit coefficient and
// derives each port's flow direction from the first nonzero entry of its
// row. A row mixing +1 and -1 would make the port both intake and emitter
// at once; that too is rejected.
func portSigns(ag *matrix.Dense) ([]int, error) {
	signs := make([]int, ag.Rows())
	for p := 0; p < ag.Rows(); p++ {
		rowSign := 0
		for b := 0; b < ag.Cols(); b++ {
			v, _ := ag.At(p, b)
			f, numeric := v.Float64()
			if !numeric || (f != 0 && f != 1 && f != -1) {
				return nil, fmt.Errorf("entry (%d,%d) = %s: %w", p, b, v, ErrPortMatrix)
			}
			if f == 0 {
				continue
			}
			s := 1
			if f < 0 {
				s = -1
			}
			if rowSign != 0 && rowSign != s {
				return nil, fmt.Errorf("port row %d mixes intake and emit signs: %w", p, ErrPortMatrix)
			}
			rowSign = s
		}
		signs[p] = rowSign
	}
	return signs, nil
}

// agAt reads the validated port-branch entry as a small integer.
func (in *instance) agAt(p, b int) int {
	v, _ := in.ag.At(p, b)
	f, _ := v.Float64()
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
