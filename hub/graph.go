// SPDX-License-Identifier: MIT
// Package hub: mutable topology construction.
//
// File: graph.go
// Role: the Graph builder — components, boundary nodes, connections,
//       and the freeze lifecycle around Compile.
//
// A Graph is single-writer by design: one goroutine builds it, Compile
// freezes it, and the resulting Model is immutable and freely shareable.
// No locking happens here. Every mutating method validates all of its
// arguments before touching state, so a returned error always leaves the
// graph exactly as it was.

package hub

import "fmt"

// connection records one accepted Connect call. Boundary endpoints are
// stored with the anonymous port "".
type connection struct {
	from Endpoint
	to   Endpoint
}

// Graph accumulates an energy-hub topology: component instances, boundary
// nodes and the connections between their ports. Components and boundary
// nodes share one name namespace.
//
// The zero Graph is not usable; construct with New.
type Graph struct {
	name string
	reg  *Registry

	comps     map[string]*instance
	compOrder []string

	ios     map[string]Direction
	ioOrder []string

	conns    []connection
	occupied map[Endpoint]int // canonical endpoint -> index into conns

	frozen bool
}

// New returns an empty graph drawing component types from reg. A nil
// registry is replaced by an empty one, in which every AddComponent fails
// with ErrUnknownComponentType.
func New(reg *Registry, opts ...Option) *Graph {
	if reg == nil {
		reg = NewRegistry()
	}
	g := &Graph{
		name:     "hub",
		reg:      reg,
		comps:    make(map[string]*instance),
		ios:      make(map[string]Direction),
		occupied: make(map[Endpoint]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the hub name.
func (g *Graph) Name() string { return g.name }

// Frozen reports whether a successful Compile has sealed the graph.
func (g *Graph) Frozen() bool { return g.frozen }

// Components lists component instance names in insertion order.
func (g *Graph) Components() []string {
	return append([]string(nil), g.compOrder...)
}

// IONodes lists boundary node names in insertion order.
func (g *Graph) IONodes() []string {
	return append([]string(nil), g.ioOrder...)
}

// Connections lists accepted connections in insertion order. Boundary
// endpoints carry the anonymous port "".
func (g *Graph) Connections() [][2]Endpoint {
	out := make([][2]Endpoint, len(g.conns))
	for i, c := range g.conns {
		out[i] = [2]Endpoint{c.from, c.to}
	}
	return out
}

// AddComponent instantiates a component of the registered type typeTag
// under the instance name name and adds it to the graph. The factory's
// parameter validation errors pass through unchanged; structural problems
// with the returned matrices are caught here, before the instance joins
// the graph.
//
// Returns:
//   - ErrGraphFrozen after a successful Compile;
//   - ErrEmptyName, ErrDuplicateName on bad names;
//   - ErrUnknownComponentType for an unregistered tag;
//   - ErrDimensionMismatch, ErrPortMatrix on inconsistent matrices;
//   - any error the component factory itself returns.
func (g *Graph) AddComponent(name, typeTag string, params Params) error {
	if g.frozen {
		return fmt.Errorf("AddComponent(%q): %w", name, ErrGraphFrozen)
	}
	if name == "" {
		return fmt.Errorf("AddComponent: %w", ErrEmptyName)
	}
	if g.nodeExists(name) {
		return fmt.Errorf("AddComponent(%q): %w", name, ErrDuplicateName)
	}
	factory, err := g.reg.Lookup(typeTag)
	if err != nil {
		return fmt.Errorf("AddComponent(%q): %w", name, err)
	}
	comp, err := factory(name, params)
	if err != nil {
		return fmt.Errorf("AddComponent(%q): %w", name, err)
	}
	inst, err := newInstance(comp)
	if err != nil {
		return fmt.Errorf("AddComponent(%q): %w", name, err)
	}
	g.comps[name] = inst
	g.compOrder = append(g.compOrder, name)
	return nil
}

// AddIONode adds a boundary node through which one carrier enters (Input)
// or leaves (Output) the hub. A boundary node has a single anonymous port
// and participates in exactly one connection.
//
// Returns:
//   - ErrGraphFrozen after a successful Compile;
//   - ErrEmptyName, ErrDuplicateName on bad names;
//   - ErrInvalidDirection when dir is not Input or Output.
func (g *Graph) AddIONode(name string, dir Direction) error {
	if g.frozen {
		return fmt.Errorf("AddIONode(%q): %w", name, ErrGraphFrozen)
	}
	if name == "" {
		return fmt.Errorf("AddIONode: %w", ErrEmptyName)
	}
	if g.nodeExists(name) {
		return fmt.Errorf("AddIONode(%q): %w", name, ErrDuplicateName)
	}
	if !dir.Valid() {
		return fmt.Errorf("AddIONode(%q): %w", name, ErrInvalidDirection)
	}
	g.ios[name] = dir
	g.ioOrder = append(g.ioOrder, name)
	return nil
}

// Connect wires fromNode's fromPort to toNode's toPort, allocating the
// next global branch index to the new connection. Flow runs from the
// source endpoint to the destination endpoint; the source must emit
// (component output port, or Input boundary node) and the destination
// must accept (component input port, or Output boundary node).
//
// For boundary nodes the port argument is ignored: they expose a single
// anonymous port. Passing "" is conventional.
//
// Returns:
//   - ErrGraphFrozen after a successful Compile;
//   - ErrUnknownNode, ErrUnknownPort on unresolved endpoints;
//   - ErrVirtualPort when either port is virtual;
//   - ErrPortDirection when the flow would run against a port's sign;
//   - ErrPortAlreadyConnected when either endpoint is occupied.
func (g *Graph) Connect(fromNode, fromPort, toNode, toPort string) error {
	if g.frozen {
		return fmt.Errorf("Connect(%s.%s -> %s.%s): %w", fromNode, fromPort, toNode, toPort, ErrGraphFrozen)
	}
	from, err := g.resolveEndpoint(fromNode, fromPort, true)
	if err != nil {
		return fmt.Errorf("Connect(%s.%s -> %s.%s): %w", fromNode, fromPort, toNode, toPort, err)
	}
	to, err := g.resolveEndpoint(toNode, toPort, false)
	if err != nil {
		return fmt.Errorf("Connect(%s.%s -> %s.%s): %w", fromNode, fromPort, toNode, toPort, err)
	}
	if _, busy := g.occupied[from]; busy {
		return fmt.Errorf("Connect: source %s: %w", from, ErrPortAlreadyConnected)
	}
	if _, busy := g.occupied[to]; busy {
		return fmt.Errorf("Connect: destination %s: %w", to, ErrPortAlreadyConnected)
	}
	idx := len(g.conns)
	g.conns = append(g.conns, connection{from: from, to: to})
	g.occupied[from] = idx
	g.occupied[to] = idx
	return nil
}

// resolveEndpoint validates one side of a Connect call and returns its
// canonical form. asSource selects which flow direction the endpoint must
// support.
func (g *Graph) resolveEndpoint(node, port string, asSource bool) (Endpoint, error) {
	if inst, ok := g.comps[node]; ok {
		pi, ok := inst.portIdx[port]
		if !ok {
			return Endpoint{}, fmt.Errorf("port %q of %q: %w", port, node, ErrUnknownPort)
		}
		if inst.ports[pi].Virtual {
			return Endpoint{}, fmt.Errorf("port %q of %q: %w", port, node, ErrVirtualPort)
		}
		want := 1 // destination must take flow in
		if asSource {
			want = -1 // source must emit
		}
		if inst.sign[pi] != want {
			return Endpoint{}, fmt.Errorf("port %q of %q: %w", port, node, ErrPortDirection)
		}
		return Endpoint{Node: node, Port: port}, nil
	}
	if dir, ok := g.ios[node]; ok {
		// An Input node sources flow, an Output node sinks it.
		if asSource && dir != Input {
			return Endpoint{}, fmt.Errorf("boundary node %q is %s: %w", node, dir, ErrPortDirection)
		}
		if !asSource && dir != Output {
			return Endpoint{}, fmt.Errorf("boundary node %q is %s: %w", node, dir, ErrPortDirection)
		}
		return Endpoint{Node: node, Port: ""}, nil
	}
	return Endpoint{}, fmt.Errorf("node %q: %w", node, ErrUnknownNode)
}

// nodeExists reports whether name is taken by a component or boundary node.
func (g *Graph) nodeExists(name string) bool {
	if _, ok := g.comps[name]; ok {
		return true
	}
	_, ok := g.ios[name]
	return ok
}
