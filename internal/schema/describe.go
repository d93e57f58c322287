package schema

import (
	"strings"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FieldDescription is the client-facing description of one schema field.
type FieldDescription struct {
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// Describe projects a parameter schema into an ordered field description
// mapping for discovery output. A nil schema or one without enumerable
// properties (non-object schemas) yields an empty mapping, so discovery never
// fails on a malformed schema.
func Describe(s *jsonschema.Schema) *orderedmap.OrderedMap[string, FieldDescription] {
	fields := orderedmap.New[string, FieldDescription]()
	if s == nil || s.Properties == nil {
		return fields
	}

	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		fields.Set(pair.Key, FieldDescription{
			Type:        coarseType(pair.Value),
			Required:    required[pair.Key],
			Description: pair.Value.Description,
		})
	}

	return fields
}

// coarseType reduces a property schema to one of the coarse discovery type
// tags: string, number, boolean, object, array, unknown. Integer widths
// collapse to number; schemas referencing a definition are objects.
func coarseType(s *jsonschema.Schema) string {
	if s == nil {
		return "unknown"
	}

	t := strings.ToLower(s.Type)
	if t == "" && s.Ref != "" {
		// $ref to a struct definition, e.g. "#/$defs/SortOrder"
		t = "object"
	}

	switch t {
	case "string", "number", "boolean", "object", "array":
		return t
	case "integer":
		return "number"
	default:
		return "unknown"
	}
}
