// SPDX-License-Identifier: MIT
// Package hub: read-only structural views of a graph.

package hub

// NodeKind distinguishes the three node roles a snapshot can carry.
type NodeKind uint8

const (
	// KindComponent marks a converter/storage/routing instance.
	KindComponent NodeKind = iota + 1
	// KindInput marks an Input boundary node.
	KindInput
	// KindOutput marks an Output boundary node.
	KindOutput
)

// String implements fmt.Stringer.
func (k NodeKind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	default:
		return "unknown"
	}
}

// SnapshotNode describes one node of a snapshot. TypeTag and Ports are
// populated for components only.
type SnapshotNode struct {
	Name    string
	Kind    NodeKind
	TypeTag string
	Ports   []Port
}

// SnapshotEdge is one connection, flow running From -> To. Boundary
// endpoints carry the anonymous port "".
type SnapshotEdge struct {
	From Endpoint
	To   Endpoint
}

// Snapshot is a detached, immutable copy of a graph's structure: nodes in
// insertion order (components first, then boundary nodes), edges in
// connection order. Snapshots stay valid however the graph evolves
// afterwards; renderers and exporters consume them instead of the live
// graph.
type Snapshot struct {
	Name  string
	Nodes []SnapshotNode
	Edges []SnapshotEdge
}

// Snapshot captures the graph's current structure. The copy is deep where
// it matters: mutating the returned slices never touches the graph.
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		Name:  g.name,
		Nodes: make([]SnapshotNode, 0, len(g.compOrder)+len(g.ioOrder)),
		Edges: make([]SnapshotEdge, 0, len(g.conns)),
	}
	for _, name := range g.compOrder {
		inst := g.comps[name]
		s.Nodes = append(s.Nodes, SnapshotNode{
			Name:    name,
			Kind:    KindComponent,
			TypeTag: inst.comp.TypeTag(),
			Ports:   append([]Port(nil), inst.ports...),
		})
	}
	for _, name := range g.ioOrder {
		kind := KindInput
		if g.ios[name] == Output {
			kind = KindOutput
		}
		s.Nodes = append(s.Nodes, SnapshotNode{Name: name, Kind: kind})
	}
	for _, c := range g.conns {
		s.Edges = append(s.Edges, SnapshotEdge{From: c.from, To: c.to})
	}
	return s
}
