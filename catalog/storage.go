// SPDX-License-Identifier: MIT
// Package: meshub/catalog
//
// storage.go - generic energy storage with a virtual state-of-charge
// branch.

package catalog

import (
	"github.com/meshub/meshub/expr"
	"github.com/meshub/meshub/hub"
	"github.com/meshub/meshub/matrix"
)

// newStorage models a battery or thermal store. Besides the physical
// charge and discharge ports it declares the virtual delta_soc port: the
// per-step change of stored energy. The virtual port cannot be connected;
// the compiler appends a dedicated branch for it, which the charge
// balance couples to the physical flows:
//
//	eta_c * V_in - V_out / eta_d - dSoC = 0
//
// Parameters: eta_c (charging efficiency), eta_d (discharging
// efficiency).
func newStorage(name string, params hub.Params) (hub.Component, error) {
	etaC, err := params.Value("eta_c")
	if err != nil {
		return nil, err
	}
	etaD, err := params.Value("eta_d")
	if err != nil {
		return nil, err
	}
	return &component{
		name: name,
		tag:  TagStorage,
		ports: []hub.Port{
			{Name: "energy_in", Index: 0},
			{Name: "energy_out", Index: 1},
			{Name: "delta_soc", Index: 2, Virtual: true},
		},
		ag: diagonalIncidence(1, -1, 1),
		hg: matrix.Must(matrix.FromRows([][]expr.Value{
			{etaC, expr.Neg(expr.Div(expr.Num(1), etaD)), expr.Num(-1)},
		})),
	}, nil
}
