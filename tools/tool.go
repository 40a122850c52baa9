// Package tools provides the closed tool catalogue, parameter validation,
// and dispatch between a model-driven caller and the domain adapters.
//
// Information Hiding:
// - Validation rules live in the parameter schema, not in handlers
// - The session token is bound by the dispatcher, never a tool argument
// - Error mapping is internalized; handlers raise typed failures
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lexkeep/lexkeep/session"
)

// ParamType is the primitive type of a tool parameter.
type ParamType string

const (
	ParamString ParamType = "string"
	ParamInt    ParamType = "int"
	ParamBool   ParamType = "bool"
)

// ParamSpec declares one parameter of a tool. Parameters are validated by
// the dispatcher before a handler runs; handlers never re-validate.
type ParamSpec struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Description string    `json:"description"`
	Required    bool      `json:"required"`
	// Enum restricts a string parameter to a closed value set.
	Enum []string `json:"enum,omitempty"`
	// Default is injected when an optional string parameter is omitted.
	Default string `json:"default,omitempty"`
	// MaxLen bounds a string parameter's length in characters after trimming.
	// Zero means unbounded.
	MaxLen int `json:"max_len,omitempty"`
	// NotBlank rejects strings that are empty after trimming.
	NotBlank bool `json:"not_blank,omitempty"`
}

// Args is the validated, typed argument bag passed to a handler.
type Args map[string]interface{}

// Has reports whether an argument is present.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns a string argument. Returns "" when absent.
func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Int returns an integer argument. Returns 0 when absent.
func (a Args) Int(name string) int64 {
	n, _ := a[name].(int64)
	return n
}

// Bool returns a boolean argument. Returns false when absent.
func (a Args) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// Handler executes one validated tool call. It returns a structured
// payload plus a human-readable message for the calling model to relay,
// or a typed error (see errors.go).
type Handler func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error)

// Descriptor describes one tool: identity, parameter schema, and handler.
// Immutable once registered.
type Descriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []ParamSpec `json:"parameters"`
	Handler     Handler     `json:"-"`
}

// String returns a short representation of the descriptor.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s: %s", d.Name, d.Description)
}

// JSONSchema returns the parameter schema as a JSON Schema object, the
// shape function-calling APIs expect.
func (d Descriptor) JSONSchema() map[string]interface{} {
	properties := make(map[string]interface{}, len(d.Parameters))
	var required []string
	for _, p := range d.Parameters {
		prop := map[string]interface{}{
			"type":        jsonSchemaType(p.Type),
			"description": p.Description,
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func jsonSchemaType(t ParamType) string {
	switch t {
	case ParamInt:
		return "number"
	case ParamBool:
		return "boolean"
	default:
		return "string"
	}
}

// Result is the bounded envelope every dispatch produces: either a
// success carrying a payload, or a failure carrying an error kind.
// Always constructed by the dispatcher, never by adapters.
type Result struct {
	Success bool        `json:"success"`
	Payload interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
	Kind    ErrorKind   `json:"error_kind,omitempty"`
}

// success wraps an adapter payload and message.
func success(payload interface{}, message string) Result {
	return Result{Success: true, Payload: payload, Message: message}
}

// failure wraps a typed failure. The message must be safe to show verbatim.
func failure(kind ErrorKind, message string) Result {
	return Result{Success: false, Kind: kind, Message: message}
}

// Encode serializes the result for relaying to the calling model.
func (r Result) Encode() string {
	encoded, err := json.Marshal(r)
	if err != nil {
		// Payloads are plain structs and maps; this should not happen.
		return fmt.Sprintf(`{"success":false,"error_kind":"backend_error","message":%q}`, err.Error())
	}
	return string(encoded)
}
