// SPDX-License-Identifier: MIT
// Package: meshub/catalog
//
// converters.go - the single-input single-output converter family.
//
// Each type couples one intake branch to one outlet branch through a
// single efficiency law k * V_in - V_out = 0. Only port names and the
// parameter key differ across the family, so one helper carries them all.

package catalog

import (
	"github.com/meshub/meshub/expr"
	"github.com/meshub/meshub/hub"
	"github.com/meshub/meshub/matrix"
)

// oneToOne builds the factory for a converter with ports inPort/outPort
// and the law paramKey * V_in - V_out = 0.
func oneToOne(tag, inPort, outPort, paramKey string) hub.Factory {
	return func(name string, params hub.Params) (hub.Component, error) {
		k, err := params.Value(paramKey)
		if err != nil {
			return nil, err
		}
		return &component{
			name: name,
			tag:  tag,
			ports: []hub.Port{
				{Name: inPort, Index: 0},
				{Name: outPort, Index: 1},
			},
			ag: diagonalIncidence(1, -1),
			hg: matrix.Must(matrix.FromRows([][]expr.Value{
				{k, expr.Num(-1)},
			})),
		}, nil
	}
}

// newBoiler: fuel_in -> heat_out, eta * V_fuel - V_heat = 0.
func newBoiler(name string, params hub.Params) (hub.Component, error) {
	return oneToOne(TagBoiler, "fuel_in", "heat_out", "eta")(name, params)
}

// newElectricBoiler: elec_in -> heat_out, eta * V_elec - V_heat = 0.
func newElectricBoiler(name string, params hub.Params) (hub.Component, error) {
	return oneToOne(TagElectricBoiler, "elec_in", "heat_out", "eta")(name, params)
}

// newHeatPump: elec_in -> heat_out, cop * V_elec - V_heat = 0. The COP
// exceeds 1 for any pump worth buying; no upper bound is enforced.
func newHeatPump(name string, params hub.Params) (hub.Component, error) {
	return oneToOne(TagHeatPump, "elec_in", "heat_out", "cop")(name, params)
}

// newAbsorptionChiller: heat_in -> cool_out, cop * V_heat - V_cool = 0.
func newAbsorptionChiller(name string, params hub.Params) (hub.Component, error) {
	return oneToOne(TagAbsorptionChiller, "heat_in", "cool_out", "cop")(name, params)
}

// newTransformer: elec_in -> elec_out, eta * V_in - V_out = 0.
func newTransformer(name string, params hub.Params) (hub.Component, error) {
	return oneToOne(TagTransformer, "elec_in", "elec_out", "eta")(name, params)
}

// newPowerToGas: elec_in -> gas_out, eta * V_elec - V_gas = 0.
func newPowerToGas(name string, params hub.Params) (hub.Component, error) {
	return oneToOne(TagPowerToGas, "elec_in", "gas_out", "eta")(name, params)
}
