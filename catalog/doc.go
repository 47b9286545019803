// SPDX-License-Identifier: MIT

// Package catalog ships the built-in component library for energy-hub
// models: fuel and electric boilers, heat pumps, chillers, transformers,
// power-to-gas units, back-pressure CHP, convertible loads, storages and
// unconstrained source elements.
//
// Every type registers a hub.Factory under a stable snake_case tag
// (TagBoiler = "boiler", ...). Wire the whole library into a registry
// with Register, or start from a pre-loaded one with NewRegistry:
//
//	reg := catalog.NewRegistry()
//	g := hub.New(reg)
//	_ = g.AddComponent("b1", catalog.TagBoiler, hub.Params{"eta": 0.9})
//
// Parameters accept numbers, symbolic expression strings ("eta_b",
// "1/eta_d") or expr.Value directly; see hub.Params. Each factory
// validates its own parameter set and returns hub sentinel errors, so
// callers branch with errors.Is exactly as for hand-written components.
package catalog
