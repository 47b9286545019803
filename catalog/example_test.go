// SPDX-License-Identifier: MIT
package catalog_test

import (
	"fmt"

	"github.com/meshub/meshub/catalog"
	"github.com/meshub/meshub/hub"
)

// ExampleNewRegistry wires a boiler between a gas source and a heat
// demand using only library components.
func ExampleNewRegistry() {
	g := hub.New(catalog.NewRegistry())

	_ = g.AddComponent("b1", catalog.TagBoiler, hub.Params{"eta": "eta_b"})
	_ = g.AddIONode("gas", hub.Input)
	_ = g.AddIONode("heat", hub.Output)
	_ = g.Connect("gas", "", "b1", "fuel_in")
	_ = g.Connect("b1", "heat_out", "heat", "")

	model, err := g.Compile()
	if err != nil {
		fmt.Println("compile:", err)
		return
	}

	fmt.Println(model.Z())
	// Output:
	// [eta_b -1]
	// [0 0]
	// [0 0]
}

// ExampleRegister shows the storage component's virtual branch: the
// state-of-charge variable appears in the flow vector without ever being
// connected.
func ExampleRegister() {
	reg := hub.NewRegistry()
	if err := catalog.Register(reg); err != nil {
		fmt.Println("register:", err)
		return
	}

	g := hub.New(reg)
	_ = g.AddComponent("bat", catalog.TagStorage, hub.Params{"eta_c": 0.9, "eta_d": 0.8})
	_ = g.AddIONode("grid", hub.Input)
	_ = g.AddIONode("load", hub.Output)
	_ = g.Connect("grid", "", "bat", "energy_in")
	_ = g.Connect("bat", "energy_out", "load", "")

	model, _ := g.Compile()
	for _, b := range model.Branches() {
		fmt.Printf("V%d %s (virtual=%t)\n", b.Index, b.Label(), b.Virtual)
	}
	// Output:
	// V0 grid_to_bat_energy_in (virtual=false)
	// V1 bat_energy_out_to_load (virtual=false)
	// V2 bat_delta_soc (virtual=true)
}
