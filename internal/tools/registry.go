package tools

import (
	"errors"
	"fmt"
)

// Registry is the fixed, startup-built mapping from tool name to descriptor.
// It is immutable after construction, so concurrent reads need no locking.
type Registry struct {
	byName map[string]*Tool
	order  []*Tool
}

// NewRegistry builds a registry from the given descriptors. A duplicate or
// empty name is a configuration error and fails construction; startup must
// abort rather than serve a partial tool set.
func NewRegistry(list ...*Tool) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*Tool, len(list)),
		order:  make([]*Tool, 0, len(list)),
	}

	for i, t := range list {
		if t == nil {
			return nil, fmt.Errorf("tool at position %d is nil", i)
		}
		if t.Name == "" {
			return nil, errors.New("tool with empty name")
		}
		if t.Execute == nil {
			return nil, fmt.Errorf("tool %q has no execute function", t.Name)
		}
		if _, exists := r.byName[t.Name]; exists {
			return nil, fmt.Errorf("duplicate tool name %q", t.Name)
		}
		r.byName[t.Name] = t
		r.order = append(r.order, t)
	}

	return r, nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// List returns the registered descriptors in insertion order.
// The returned slice is a copy; callers cannot mutate the registry.
func (r *Registry) List() []*Tool {
	out := make([]*Tool, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns all registered names in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, t := range r.order {
		names[i] = t.Name
	}
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}
