// Package tools defines the tool descriptor model and the immutable
// registry the invocation gateway dispatches against.
package tools

import (
	"context"

	"github.com/invopop/jsonschema"
)

// InvocationContext carries auxiliary execution-time data passed to a tool
// alongside its parameters. The baseline deployment passes an empty value;
// the gateway fills CorrelationID so tool logs can be traced per request.
type InvocationContext struct {
	CorrelationID string
}

// HandlerFunc executes one tool call. params is the raw, unvalidated JSON
// request body; each tool validates its own input. The returned value is a
// string or any JSON-serializable value.
type HandlerFunc func(ctx context.Context, params map[string]any, ic InvocationContext) (any, error)

// Tool is the unit of registration: a named operation with its parameter
// schema and execution function. Constructed once at startup and never
// mutated.
type Tool struct {
	Name        string
	Description string
	Category    string
	Parameters  *jsonschema.Schema
	Execute     HandlerFunc
}
