// SPDX-License-Identifier: MIT
// Package: meshub/catalog
//
// catalog.go - the public surface of the component library.
//
// Design contract (strict):
//   - All type tags are declared here; each tag's factory lives in its
//     own impl file (converters.go, chp.go, storage.go, ...).
//   - Factories validate parameters early and return hub sentinel errors,
//     never panic, never build half-initialized components.
//   - Determinism: a factory's output depends only on (name, params).
//   - Matrices handed to the hub are freshly built per instance; no
//     shared mutable state between instances.

package catalog

import (
	"fmt"

	"github.com/meshub/meshub/expr"
	"github.com/meshub/meshub/hub"
	"github.com/meshub/meshub/matrix"
)

// Stable registry tags for the built-in component types.
const (
	TagSource            = "source"
	TagBoiler            = "boiler"
	TagElectricBoiler    = "electric_boiler"
	TagHeatPump          = "heat_pump"
	TagAbsorptionChiller = "absorption_chiller"
	TagTransformer       = "transformer"
	TagPowerToGas        = "power_to_gas"
	TagCHPBackPressure   = "chp_back_pressure"
	TagConvertibleLoad   = "convertible_load"
	TagStorage           = "storage"
)

// Register wires every built-in type into reg. It fails on the first
// registration error (typically ErrDuplicateName when a tag is already
// taken) and leaves earlier registrations in place.
func Register(reg *hub.Registry) error {
	bindings := []struct {
		tag string
		f   hub.Factory
	}{
		{TagSource, newSource},
		{TagBoiler, newBoiler},
		{TagElectricBoiler, newElectricBoiler},
		{TagHeatPump, newHeatPump},
		{TagAbsorptionChiller, newAbsorptionChiller},
		{TagTransformer, newTransformer},
		{TagPowerToGas, newPowerToGas},
		{TagCHPBackPressure, newCHPBackPressure},
		{TagConvertibleLoad, newConvertibleLoad},
		{TagStorage, newStorage},
	}
	for _, b := range bindings {
		if err := reg.Register(b.tag, b.f); err != nil {
			return fmt.Errorf("catalog.Register: %w", err)
		}
	}
	return nil
}

// NewRegistry returns a fresh registry pre-loaded with the full library.
func NewRegistry() *hub.Registry {
	reg := hub.NewRegistry()
	if err := Register(reg); err != nil {
		// Only reachable through a tag collision inside this package,
		// which is a programming error.
		panic(err)
	}
	return reg
}

// component backs every catalog type: a name, a tag and the two local
// matrices, built once by the factory and handed out as-is (the hub
// clones what it keeps).
type component struct {
	name  string
	tag   string
	ports []hub.Port
	ag    *matrix.Dense
	hg    *matrix.Dense
}

func (c *component) Name() string                        { return c.name }
func (c *component) TypeTag() string                     { return c.tag }
func (c *component) Ports() []hub.Port                   { return c.ports }
func (c *component) PortBranchMatrix() *matrix.Dense     { return c.ag }
func (c *component) CharacteristicMatrix() *matrix.Dense { return c.hg }

// diagonalIncidence builds the usual one-branch-per-port Ag with the
// given row signs (+1 intake, -1 emit).
func diagonalIncidence(signs ...int) *matrix.Dense {
	n := len(signs)
	ag := matrix.Must(matrix.New(n, n))
	for i, s := range signs {
		// Set cannot fail on a freshly built square matrix.
		_ = ag.Set(i, i, expr.Num(float64(s)))
	}
	return ag
}
