// SPDX-License-Identifier: MIT
// Package hub: sentinel errors for topology construction and assembly.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is, never on message text.
//   - Implementations attach context ("AddComponent(%q): ...") via %w
//     wrapping at the offending call.
//   - A failed operation leaves the graph exactly as it was; only a
//     successful Compile changes the lifecycle state.
//   - No method panics on user input.

package hub

import "errors"

// ErrEmptyName reports an empty node name handed to AddComponent or
// AddIONode. Names are identifiers shared by one namespace per graph.
var ErrEmptyName = errors.New("hub: node name is empty")

// ErrDuplicateName reports a name collision: a second component or IO node
// with a name already present in the graph, a duplicate port name inside
// one component, or a re-registered type tag.
// Usage: if errors.Is(err, ErrDuplicateName) { /* rename the node */ }.
var ErrDuplicateName = errors.New("hub: duplicate name")

// ErrUnknownComponentType reports a type tag absent from the registry.
// There is no default fallback; registration is explicit.
var ErrUnknownComponentType = errors.New("hub: unknown component type")

// ErrBadFactory reports an invalid registration: an empty type tag or a
// nil factory function.
var ErrBadFactory = errors.New("hub: invalid factory registration")

// ErrInvalidDirection reports a Direction value that is neither Input nor
// Output (including the zero value, which is deliberately invalid).
var ErrInvalidDirection = errors.New("hub: direction must be Input or Output")

// ErrUnknownNode reports a connection endpoint naming a node the graph
// does not contain.
var ErrUnknownNode = errors.New("hub: unknown node")

// ErrUnknownPort reports a connection endpoint naming a port the addressed
// component does not declare.
var ErrUnknownPort = errors.New("hub: unknown port")

// ErrVirtualPort reports an attempt to connect a virtual port. Virtual
// ports carry internal state variables (a storage's ΔSoC); they receive
// their own branch at compile time and are not attachment points.
var ErrVirtualPort = errors.New("hub: virtual port cannot be connected")

// ErrPortDirection reports a connection that runs against the port sign
// convention: the source endpoint must emit flow (component output port or
// Input boundary node) and the destination must accept it (component input
// port or Output boundary node).
var ErrPortDirection = errors.New("hub: connection violates port direction")

// ErrPortAlreadyConnected reports reuse of an occupied endpoint. A port
// carries exactly one flow; boundary nodes participate in exactly one
// connection.
var ErrPortAlreadyConnected = errors.New("hub: port already connected")

// ErrPortNotConnected is raised during assembly for a non-virtual
// component port, or a boundary node, that no connection reaches. Every
// declared port must carry a flow before the model can be compiled.
var ErrPortNotConnected = errors.New("hub: port not connected")

// ErrGraphFrozen reports a mutation attempted after a successful Compile.
// The frozen state is terminal for that graph.
var ErrGraphFrozen = errors.New("hub: graph is frozen")

// ErrDimensionMismatch reports a component whose local matrices disagree:
// Ag row count vs. declared ports, Ag vs. Hg column counts, or a missing
// matrix. Detected at AddComponent, before the instance joins the graph.
var ErrDimensionMismatch = errors.New("hub: component matrix dimensions disagree")

// ErrPortMatrix reports a port-branch matrix entry outside {-1, 0, +1}.
// Ag is a signed incidence relation, not a weighting.
var ErrPortMatrix = errors.New("hub: port-branch entries must be -1, 0 or +1")

// ErrOrphanBranch is raised during assembly when a global branch is
// referenced by no component's port-branch relation (for example a wire
// between two boundary nodes), or when a component declares an internal
// branch no port observes. Orphans are design errors, never ignored.
var ErrOrphanBranch = errors.New("hub: branch referenced by no component")

// ErrEmptyGraph reports a Compile call on a graph with no branches at all.
var ErrEmptyGraph = errors.New("hub: graph has no branches")

// ErrUnknownBranch reports a model lookup (BranchAt, PortBranch) that
// addresses no branch of the compiled model.
var ErrUnknownBranch = errors.New("hub: unknown branch")

// ErrMissingParam reports a component parameter absent from the Params map.
var ErrMissingParam = errors.New("hub: missing parameter")

// ErrBadParam reports a parameter value of an unsupported type or an
// unparseable symbolic expression.
var ErrBadParam = errors.New("hub: invalid parameter value")
