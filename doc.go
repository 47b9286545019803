// Package meshub turns multi-carrier energy-system descriptions (gas,
// heat and electricity flowing through converters and storages) into the
// matrix model Z·V = 0, V_in = X·V, V_out = Y·V.
//
// 🚀 What is meshub?
//
//	A compiler from energy-hub topology to linear structure:
//		• Typed components: boilers, CHP units, heat pumps, storages, or your own
//		• A validating graph builder: named ports, use-once occupancy, boundary nodes
//		• Deterministic assembly: branch order is build order, same graph → same model
//		• Symbolic parameters: efficiencies as numbers or expressions (eta, 1/eta_d, …)
//		• Downstream laws: coupling matrix C with V_out = C·V_in, diagram layout
//
// ✨ Why choose meshub?
//
//   - Fail-fast wiring – misconnections surface at Connect and Compile, never at solve time
//   - Immutable models – compiled artifacts are content-addressed and safely shareable
//   - Pure library – no daemon, no CLI; YAML loading included, rendering left to you
//   - Extensible – implement hub.Component, register a factory, and the compiler
//     treats your type exactly like the built-ins
//
// Everything is organized under seven subpackages:
//
//	expr/     — numeric/symbolic scalar values: arithmetic, Parse, Eval
//	matrix/   — dense expression matrices + gonum export
//	hub/      — component contract, registry, topology graph, Compile → Model
//	catalog/  — the built-in component library (source ... storage)
//	config/   — YAML topology documents → built graphs
//	analysis/ — coupling matrix C = −Y·Q⁻¹·R, symbolic and numeric
//	layout/   — layered diagram coordinates from a snapshot
//
// Quick ASCII example:
//
//	gas ──> chp1 ──> heat
//	            `──> elec
//
//	one fuel intake feeding a cogenerator that serves two demands; Compile
//	yields V = (V0, V1, V2) with Z pinning eta_q·V0 − V1 = 0 and
//	eta_w·V0 − V2 = 0.
//
//	go get github.com/meshub/meshub
package meshub
