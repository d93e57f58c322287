package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/common"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/tools"
)

// genericFailureMessage is used when a tool failure carries no message of
// its own.
const genericFailureMessage = "An unexpected error occurred"

type invokeResponse struct {
	Success bool   `json:"success"`
	Tool    string `json:"tool"`
	Result  any    `json:"result"`
}

type invokeFailure struct {
	Error string `json:"error"`
	Tool  string `json:"tool"`
}

type unknownToolResponse struct {
	Error     string   `json:"error"`
	Available []string `json:"available"`
}

// InvokeHandler executes registered tools by name.
type InvokeHandler struct {
	logger   *common.Logger
	registry *tools.Registry
}

// NewInvokeHandler creates a new invoke handler.
func NewInvokeHandler(logger *common.Logger, registry *tools.Registry) *InvokeHandler {
	return &InvokeHandler{logger: logger, registry: registry}
}

// ServeHTTP handles POST /api/tools/{name}. The gateway performs no
// parameter validation of its own; each tool validates the input it is
// given. Every request terminates in exactly one JSON response: 200 on
// success, 404 for an unknown name, 500 for any execution failure.
func (h *InvokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/tools/")

	params, err := decodeBody(r)
	if err != nil {
		h.writeFailure(w, r, name, err)
		return
	}

	tool, ok := h.registry.Lookup(name)
	if !ok {
		WriteJSON(w, http.StatusNotFound, unknownToolResponse{
			Error:     fmt.Sprintf("Tool '%s' not found", name),
			Available: h.registry.Names(),
		})
		return
	}

	ic := tools.InvocationContext{
		CorrelationID: common.CorrelationIDFromContext(r.Context()),
	}

	result, err := h.execute(r.Context(), tool, params, ic)
	if err != nil {
		h.writeFailure(w, r, name, err)
		return
	}

	WriteJSON(w, http.StatusOK, invokeResponse{
		Success: true,
		Tool:    name,
		Result:  tools.NormalizeResult(result),
	})
}

// execute runs the tool, converting a panic inside it into an error so the
// request still receives a bounded response.
func (h *InvokeHandler) execute(ctx context.Context, tool *tools.Tool, params map[string]any, ic tools.InvocationContext) (result any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("tool panicked: %v", rec)
		}
	}()
	return tool.Execute(ctx, params, ic)
}

// writeFailure converts any execution failure into the bounded 500 response.
// It must always produce a response, so the logger is optional here.
func (h *InvokeHandler) writeFailure(w http.ResponseWriter, r *http.Request, name string, err error) {
	message := err.Error()
	if message == "" {
		message = genericFailureMessage
	}

	if h.logger != nil {
		h.logger.Error().
			Str("correlation_id", common.CorrelationIDFromContext(r.Context())).
			Str("tool", name).
			Err(err).
			Msg("tool execution failed")
	}

	WriteJSON(w, http.StatusInternalServerError, invokeFailure{Error: message, Tool: name})
}

// decodeBody parses the request body as a JSON object. An absent or empty
// body is treated as an empty parameter object, not an error.
func decodeBody(r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return map[string]any{}, nil
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var params map[string]any
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	if params == nil {
		params = map[string]any{}
	}
	return params, nil
}
