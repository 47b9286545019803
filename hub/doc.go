// SPDX-License-Identifier: MIT

// Package hub turns a description of a multi-carrier energy system into
// the matrices a steady-state solver or optimiser consumes.
//
// 🚀 What is hub?
//
// An energy hub couples carriers — gas, electricity, heat — through
// converters (CHP units, boilers, heat pumps), storages and routing
// elements. You describe the plant as a directed graph: component
// instances with named ports, boundary nodes where carriers enter and
// leave, and connections between ports. Compile walks that graph once
// and emits the model
//
//	Z * V = 0       every conversion law and every flow tie
//	V_in  = X * V   boundary inputs read off the flow vector
//	V_out = Y * V   boundary outputs read off the flow vector
//
// over the global flow vector V, one entry per branch. Entries are
// symbolic (expr.Value), so efficiencies may stay named parameters right
// through to the solver.
//
// ✨ Core guarantees
//
//   - Deterministic: the same build sequence always compiles to the same
//     model, bit for bit, including its UUID.
//   - Fail-fast: every mutating call validates before touching state; an
//     error leaves the graph exactly as it was.
//   - Strict wiring: unknown nodes and ports, direction violations,
//     double connections, dangling ports and orphan branches are all
//     errors — nothing is silently dropped.
//   - Single-writer: a Graph is built by one goroutine without locks;
//     the compiled Model is immutable and safe to share.
//
// ⚙️ Quick example
//
//	reg := hub.NewRegistry()
//	reg.MustRegister("boiler", newBoiler) // a Factory
//
//	g := hub.New(reg, hub.WithName("site-a"))
//	_ = g.AddComponent("b1", "boiler", hub.Params{"eta": 0.9})
//	_ = g.AddIONode("gas", hub.Input)
//	_ = g.AddIONode("heat", hub.Output)
//	_ = g.Connect("gas", "", "b1", "fuel_in")
//	_ = g.Connect("b1", "heat_out", "heat", "")
//
//	model, err := g.Compile()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(model.Z()) // [0.9 -1] plus two zero tie rows
//
// Components implement the small Component interface; the catalog
// package ships the standard set. See compile.go for the exact assembly
// and sign conventions.
package hub
