// Package schema turns tool input structs into JSON schemas and
// discovery-safe field descriptions.
package schema

import (
	"github.com/invopop/jsonschema"
)

// Reflect builds a schema from a tool's input struct. Definitions are
// inlined rather than referenced, so a struct input yields a root object
// schema carrying Properties/Required directly, with field order matching
// struct declaration order. Non-struct inputs yield a scalar schema with no
// property list.
func Reflect(v any) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	return r.Reflect(v)
}
