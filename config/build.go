// SPDX-License-Identifier: MIT
// Package config: replaying a document against the graph builder.

package config

import (
	"fmt"

	"github.com/meshub/meshub/hub"
)

// Build constructs a fresh graph from the document, resolving component
// types through reg. Sections replay in document order — components,
// then nodes, then connections — so identical documents always build
// identical graphs. The graph is returned open; the caller decides when
// to Compile.
//
// The document's name, when present, becomes the hub name; opts apply on
// top and may override it.
//
// All builder errors pass through unchanged (ErrUnknownComponentType,
// ErrDuplicateName, ErrPortDirection, ...), each wrapped with the
// document position that triggered it.
func (h *Hub) Build(reg *hub.Registry, opts ...hub.Option) (*hub.Graph, error) {
	if h.Name != "" {
		opts = append([]hub.Option{hub.WithName(h.Name)}, opts...)
	}
	g := hub.New(reg, opts...)

	for i, c := range h.Components {
		if err := g.AddComponent(c.Name, c.Type, hub.Params(c.Params)); err != nil {
			return nil, fmt.Errorf("Build: components[%d]: %w", i, err)
		}
	}
	for i, n := range h.Nodes {
		dir, err := hub.ParseDirection(n.Direction)
		if err != nil {
			return nil, fmt.Errorf("Build: nodes[%d]: %w", i, err)
		}
		if err := g.AddIONode(n.Name, dir); err != nil {
			return nil, fmt.Errorf("Build: nodes[%d]: %w", i, err)
		}
	}
	for i, c := range h.Connections {
		if err := g.Connect(c.From, c.FromPort, c.To, c.ToPort); err != nil {
			return nil, fmt.Errorf("Build: connections[%d]: %w", i, err)
		}
	}
	return g, nil
}
