// SPDX-License-Identifier: MIT
// Package hub: the component type registry.

package hub

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs one component instance. name is the instance name
// chosen by the caller; params carries the constructor parameters.
// A factory validates its parameters and returns an error rather than a
// half-built component.
type Factory func(name string, params Params) (Component, error)

// Registry maps type tags ("chp", "boiler", ...) onto factories. Lookup
// is explicit: an unknown tag is an error, never a silent default.
//
// The registry is safe for concurrent use; registration typically happens
// once at start-up, lookups on every AddComponent.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds tag to f.
//
// Returns:
//   - ErrBadFactory when tag is empty or f is nil;
//   - ErrDuplicateName when tag is already bound.
func (r *Registry) Register(tag string, f Factory) error {
	if tag == "" || f == nil {
		return fmt.Errorf("Register(%q): %w", tag, ErrBadFactory)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.factories[tag]; dup {
		return fmt.Errorf("Register(%q): %w", tag, ErrDuplicateName)
	}
	r.factories[tag] = f
	return nil
}

// MustRegister is Register for package init blocks; it panics on error.
func (r *Registry) MustRegister(tag string, f Factory) {
	if err := r.Register(tag, f); err != nil {
		panic(err)
	}
}

// Lookup resolves tag to its factory.
//
// Returns:
//   - ErrUnknownComponentType when tag is not registered.
func (r *Registry) Lookup(tag string) (Factory, error) {
	r.mu.RLock()
	f, ok := r.factories[tag]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", tag, ErrUnknownComponentType)
	}
	return f, nil
}

// Types lists the registered tags in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
