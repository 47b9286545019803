// SPDX-License-Identifier: MIT
// Package hub: functional options for New.

package hub

// Option customises a Graph at construction time. Options follow the
// functional-options idiom; invalid arguments panic here, at the
// configuration site, rather than surfacing later as obscure state.
type Option func(*Graph)

// WithName sets the hub name carried into the compiled model. The
// default is "hub". Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("hub: WithName: empty name")
	}
	return func(g *Graph) { g.name = name }
}
