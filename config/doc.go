// SPDX-License-Identifier: MIT

// Package config loads energy-hub topologies from YAML documents.
//
// A document names the hub and lists its components, boundary nodes and
// connections:
//
//	name: site_a
//	components:
//	  - name: chp1
//	    type: chp_back_pressure
//	    params: {eta_q: 0.5, eta_w: eta_w}
//	nodes:
//	  - {name: gas, direction: input}
//	  - {name: heat, direction: output}
//	  - {name: elec, direction: output}
//	connections:
//	  - {from: gas, to: chp1, to_port: fuel_in}
//	  - {from: chp1, from_port: heat_out, to: heat}
//	  - {from: chp1, from_port: elec_out, to: elec}
//
// Parse (or Load, for a file) decodes and schema-checks the document;
// Build replays it against a component registry in document order, so a
// built graph compiles to the same model every time. Parameter values may
// be numbers or symbolic expression strings, exactly as in hub.Params.
package config
