// Tool registry.
//
// The registry is the closed catalogue of tool descriptors, built once at
// process start and read-only thereafter. Keeping registration static
// bounds the attack surface: a hostile caller can only name tools that
// already exist.

package tools

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds the closed tool catalogue, keyed by unique name.
// Immutable after construction, so it is safe for concurrent use
// without locking.
type Registry struct {
	tools map[string]Descriptor
	names []string
}

// NewRegistry builds a registry from the full tool set.
// Returns an error if two descriptors share a name.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	tools := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		if _, exists := tools[d.Name]; exists {
			return nil, fmt.Errorf("tool '%s' already registered", d.Name)
		}
		tools[d.Name] = d
	}

	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Registry{tools: tools, names: names}, nil
}

// Resolve returns a descriptor by name.
func (r *Registry) Resolve(name string) (Descriptor, bool) {
	d, exists := r.tools[name]
	return d, exists
}

// Has checks if a tool exists in the registry.
func (r *Registry) Has(name string) bool {
	_, exists := r.tools[name]
	return exists
}

// Names returns all registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Describe returns the descriptors of all registered tools, sorted by name.
func (r *Registry) Describe() []Descriptor {
	descriptors := make([]Descriptor, 0, len(r.names))
	for _, name := range r.names {
		descriptors = append(descriptors, r.tools[name])
	}
	return descriptors
}

// Description returns a formatted description of all tools for prompts.
func (r *Registry) Description() string {
	var descriptions []string
	for _, name := range r.names {
		desc := r.tools[name]
		var params []string
		for _, p := range desc.Parameters {
			required := "optional"
			if p.Required {
				required = "required"
			}
			line := fmt.Sprintf("  - %s (%s): %s [%s]", p.Name, p.Type, p.Description, required)
			if len(p.Enum) > 0 {
				line += " one of: " + strings.Join(p.Enum, "|")
			}
			params = append(params, line)
		}

		descriptions = append(descriptions, fmt.Sprintf(
			"Tool: %s\nDescription: %s\nParameters:\n%s",
			desc.Name, desc.Description, strings.Join(params, "\n")))
	}

	return strings.Join(descriptions, "\n\n")
}
