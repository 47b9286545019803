// SPDX-License-Identifier: MIT

// Package layout computes diagram coordinates for hub topologies.
//
// Nodes land on a left-to-right grid in the Simulink manner: in-degree
// zero nodes sit in column 0, every other node one column right of its
// furthest predecessor (longest-path layering), and output boundary
// nodes are pushed to the rightmost column so the demands line up.
// Within a column, nodes keep snapshot order top to bottom, centered on
// the horizontal axis. The package only computes coordinates; rendering
// is left to the caller.
package layout

import (
	"errors"

	"github.com/meshub/meshub/hub"
)

// ErrEmptySnapshot is returned by Compute for a snapshot with no nodes.
var ErrEmptySnapshot = errors.New("layout: empty snapshot")

// Position is one node's diagram coordinate. X grows rightward along the
// flow direction, Y upward.
type Position struct {
	X float64
	Y float64
}

// config carries the grid pitch.
type config struct {
	dx float64
	dy float64
}

// Option adjusts the layout grid.
type Option func(*config)

// WithSpacing sets the horizontal and vertical grid pitch. Both must be
// positive. The defaults are 2.0 and 1.5.
func WithSpacing(dx, dy float64) Option {
	if dx <= 0 || dy <= 0 {
		panic("layout: spacing must be positive")
	}
	return func(c *config) {
		c.dx = dx
		c.dy = dy
	}
}

// Compute assigns a coordinate to every node of the snapshot, keyed by
// node name. Cycles are legal — recirculation loops are broken in
// snapshot order, so the result is deterministic for a given build
// sequence. Edges naming nodes outside the snapshot are ignored.
func Compute(s hub.Snapshot, opts ...Option) (map[string]Position, error) {
	if len(s.Nodes) == 0 {
		return nil, ErrEmptySnapshot
	}
	cfg := config{dx: 2, dy: 1.5}
	for _, opt := range opts {
		opt(&cfg)
	}

	col := columns(s)
	maxCol := 0
	for _, c := range col {
		if c > maxCol {
			maxCol = c
		}
	}
	for i, n := range s.Nodes {
		if n.Kind == hub.KindOutput {
			col[i] = maxCol
		}
	}

	byCol := make([][]int, maxCol+1)
	for i := range s.Nodes {
		byCol[col[i]] = append(byCol[col[i]], i)
	}
	pos := make(map[string]Position, len(s.Nodes))
	for c, members := range byCol {
		for row, i := range members {
			pos[s.Nodes[i].Name] = Position{
				X: float64(c) * cfg.dx,
				Y: (float64(len(members))/2 - float64(row)) * cfg.dy,
			}
		}
	}
	return pos, nil
}

// columns assigns each node its column index: the longest path from the
// in-degree zero frontier, computed by Kahn peeling. Nodes caught on a
// cycle are placed afterwards in snapshot order, one column right of
// their furthest already-placed predecessor, so back edges never push a
// node rightward.
func columns(s hub.Snapshot) []int {
	index := make(map[string]int, len(s.Nodes))
	for i, n := range s.Nodes {
		index[n.Name] = i
	}
	n := len(s.Nodes)
	indeg := make([]int, n)
	succ := make([][]int, n)
	pred := make([][]int, n)
	for _, e := range s.Edges {
		u, okFrom := index[e.From.Node]
		v, okTo := index[e.To.Node]
		if !okFrom || !okTo {
			continue
		}
		succ[u] = append(succ[u], v)
		pred[v] = append(pred[v], u)
		indeg[v]++
	}

	col := make([]int, n)
	placed := make([]bool, n)
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		placed[u] = true
		for _, v := range succ[u] {
			if col[u]+1 > col[v] {
				col[v] = col[u] + 1
			}
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}
	for i := 0; i < n; i++ {
		if placed[i] {
			continue
		}
		c := 0
		for _, p := range pred[i] {
			if placed[p] && col[p]+1 > c {
				c = col[p] + 1
			}
		}
		col[i] = c
		placed[i] = true
	}
	return col
}
