// Parameter schema validation.
//
// The raw argument bag from the model is validated once here, producing a
// typed Args value for the handler. Unknown fields are ignored for forward
// compatibility; everything declared is checked strictly.

package tools

import (
	"encoding/json"
	"math"
	"strings"
	"unicode/utf8"
)

// validateArgs checks rawArgs against the descriptor's parameter schema.
// Returns the typed argument bag, or a KindValidation error naming the
// first offending field in declared order.
func validateArgs(desc Descriptor, rawArgs json.RawMessage) (Args, error) {
	raw := map[string]json.RawMessage{}
	if len(rawArgs) > 0 {
		if err := json.Unmarshal(rawArgs, &raw); err != nil {
			return nil, Errorf(KindValidation, "arguments must be a JSON object: %v", err)
		}
	}

	args := make(Args, len(desc.Parameters))
	for _, p := range desc.Parameters {
		value, present := raw[p.Name]
		if !present || string(value) == "null" {
			if p.Required {
				return nil, Errorf(KindValidation, "missing required parameter: %s", p.Name)
			}
			if p.Default != "" {
				args[p.Name] = p.Default
			}
			continue
		}

		typed, err := coerceParam(p, value)
		if err != nil {
			return nil, err
		}
		args[p.Name] = typed
	}

	return args, nil
}

// coerceParam converts one raw JSON value according to its spec.
func coerceParam(p ParamSpec, value json.RawMessage) (interface{}, error) {
	switch p.Type {
	case ParamString:
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, Errorf(KindValidation, "parameter %s must be a string", p.Name)
		}
		s = strings.TrimSpace(s)
		if p.NotBlank && s == "" {
			return nil, Errorf(KindValidation, "parameter %s must not be blank", p.Name)
		}
		// MaxLen bounds characters, not bytes.
		if p.MaxLen > 0 && utf8.RuneCountInString(s) > p.MaxLen {
			return nil, Errorf(KindValidation, "parameter %s exceeds %d characters", p.Name, p.MaxLen)
		}
		if len(p.Enum) > 0 && !enumContains(p.Enum, s) {
			return nil, Errorf(KindValidation, "parameter %s must be one of: %s",
				p.Name, strings.Join(p.Enum, ", "))
		}
		return s, nil

	case ParamInt:
		var n float64
		if err := json.Unmarshal(value, &n); err != nil {
			return nil, Errorf(KindValidation, "parameter %s must be a number", p.Name)
		}
		if n != math.Trunc(n) {
			return nil, Errorf(KindValidation, "parameter %s must be an integer", p.Name)
		}
		return int64(n), nil

	case ParamBool:
		var b bool
		if err := json.Unmarshal(value, &b); err != nil {
			return nil, Errorf(KindValidation, "parameter %s must be a boolean", p.Name)
		}
		return b, nil

	default:
		return nil, Errorf(KindValidation, "parameter %s has an unsupported type", p.Name)
	}
}

func enumContains(enum []string, value string) bool {
	for _, e := range enum {
		if e == value {
			return true
		}
	}
	return false
}
