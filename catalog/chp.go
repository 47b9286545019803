// SPDX-License-Identifier: MIT
// Package: meshub/catalog
//
// chp.go - combined heat and power in back-pressure mode.

package catalog

import (
	"github.com/meshub/meshub/expr"
	"github.com/meshub/meshub/hub"
	"github.com/meshub/meshub/matrix"
)

// newCHPBackPressure builds a cogenerator with one fuel intake, one heat
// outlet and one or more electricity outlets.
//
// Parameters:
//   - eta_q: thermal efficiency, heat balance eta_q * V_fuel - V_heat = 0.
//   - eta_w: electric efficiency, power balance
//     eta_w * V_fuel - sum(V_elec_i) = 0.
//   - elec_ports (optional string list): names of the electricity
//     outlets; defaults to a single "elec_out". Several outlets share one
//     balance, leaving their split to the downstream optimiser.
func newCHPBackPressure(name string, params hub.Params) (hub.Component, error) {
	etaQ, err := params.Value("eta_q")
	if err != nil {
		return nil, err
	}
	etaW, err := params.Value("eta_w")
	if err != nil {
		return nil, err
	}
	elecPorts, err := params.StringList("elec_ports")
	if err != nil {
		return nil, err
	}
	if len(elecPorts) == 0 {
		elecPorts = []string{"elec_out"}
	}

	ports := []hub.Port{
		{Name: "fuel_in", Index: 0},
		{Name: "heat_out", Index: 1},
	}
	signs := []int{1, -1}
	for i, p := range elecPorts {
		ports = append(ports, hub.Port{Name: p, Index: 2 + i})
		signs = append(signs, -1)
	}

	heatRow := make([]expr.Value, len(ports))
	heatRow[0] = etaQ
	heatRow[1] = expr.Num(-1)
	elecRow := make([]expr.Value, len(ports))
	elecRow[0] = etaW
	for i := range elecPorts {
		elecRow[2+i] = expr.Num(-1)
	}

	return &component{
		name:  name,
		tag:   TagCHPBackPressure,
		ports: ports,
		ag:    diagonalIncidence(signs...),
		hg:    matrix.Must(matrix.FromRows([][]expr.Value{heatRow, elecRow})),
	}, nil
}
