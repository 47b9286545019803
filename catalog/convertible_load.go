// SPDX-License-Identifier: MIT
// Package: meshub/catalog
//
// convertible_load.go - a demand that accepts substitutable carriers.

package catalog

import (
	"github.com/meshub/meshub/expr"
	"github.com/meshub/meshub/hub"
	"github.com/meshub/meshub/matrix"
)

// newConvertibleLoad models a flexible demand fed by electricity, heat or
// any mix of the two:
//
//	V_satisfied = V_elec + substitution_ratio * V_heat
//
// The substitution_ratio parameter states how much one unit of heat is
// worth in electricity terms.
func newConvertibleLoad(name string, params hub.Params) (hub.Component, error) {
	ratio, err := params.Value("substitution_ratio")
	if err != nil {
		return nil, err
	}
	return &component{
		name: name,
		tag:  TagConvertibleLoad,
		ports: []hub.Port{
			{Name: "elec_supply", Index: 0},
			{Name: "heat_supply", Index: 1},
			{Name: "satisfied_demand", Index: 2},
		},
		ag: diagonalIncidence(1, 1, -1),
		hg: matrix.Must(matrix.FromRows([][]expr.Value{
			{expr.Num(-1), expr.Neg(ratio), expr.Num(1)},
		})),
	}, nil
}
