// SPDX-License-Identifier: MIT

// Package analysis derives the steady-state input/output law of a
// compiled energy hub.
//
// A hub.Model fixes three matrices over the branch flow vector V:
//
//	Z·V = 0        conversion laws and flow ties
//	V_in  = X·V    flows entering on input nodes
//	V_out = Y·V    flows leaving on output nodes
//
// Stacking X on the effective rows of Z gives a square system with one
// equation per branch; solving it against the input injection yields the
// coupling matrix C with
//
//	V_out = C·V_in
//
// Derive keeps parameters symbolic — a boiler hub with efficiency eta
// collapses to C = [[eta]] in closed form — while DeriveNumeric runs the
// same solve in float64 on gonum for numeric models. The law can then be
// inspected entry-wise with At, collapsed with Eval, or applied to
// concrete boundary flows with Flows:
//
//	c, err := analysis.Derive(model)
//	if err != nil {
//		return err
//	}
//	flows, err := c.Flows(map[string]float64{"gas": 100}, nil)
//
// Hubs that do not pin every branch — a storage state branch is the usual
// case — have no unique law and fail with ErrNotSquare; linearly
// dependent constraints fail with ErrSingular.
package analysis
