// SPDX-License-Identifier: MIT
// Package: meshub/catalog
//
// source.go - the unconstrained pass-through element.

package catalog

import (
	"github.com/meshub/meshub/hub"
	"github.com/meshub/meshub/matrix"
)

// newSource builds a routing element with no physics of its own: both
// ports observe one internal branch, so compilation ties the inbound and
// outbound wires to the same flow without adding a characteristic law.
// Useful for metering points and for splitting a model at an interface
// without disturbing it.
func newSource(name string, _ hub.Params) (hub.Component, error) {
	return &component{
		name: name,
		tag:  TagSource,
		ports: []hub.Port{
			{Name: "in", Index: 0},
			{Name: "out", Index: 1},
		},
		ag: matrix.Must(matrix.FromFloats([][]float64{{1}, {-1}})),
		hg: matrix.Must(matrix.New(0, 1)),
	}, nil
}
