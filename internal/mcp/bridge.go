// Package mcp exposes the tool registry over the Model Context Protocol
// using mcp-go's streamable HTTP and stdio transports.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/common"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/schema"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// BuildMCPTool converts a registry tool into an mcp.Tool with the appropriate schema.
func BuildMCPTool(t *tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}
	fields := schema.Describe(t.Parameters)
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		opts = append(opts, buildFieldOption(pair.Key, pair.Value))
	}
	return mcp.NewTool(t.Name, opts...)
}

// buildFieldOption maps a described schema field to the appropriate mcp-go tool option.
func buildFieldOption(name string, fd schema.FieldDescription) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if fd.Description != "" {
		opts = append(opts, mcp.Description(fd.Description))
	}
	if fd.Required {
		opts = append(opts, mcp.Required())
	}

	switch fd.Type {
	case "number":
		return mcp.WithNumber(name, opts...)
	case "boolean":
		return mcp.WithBoolean(name, opts...)
	case "array":
		opts = append([]mcp.PropertyOption{mcp.WithStringItems()}, opts...)
		return mcp.WithArray(name, opts...)
	default:
		// string, object, or unknown all pass as string
		return mcp.WithString(name, opts...)
	}
}

// ToolHandler adapts a registry tool to an mcp-go handler. Execution failures
// are reported as MCP error results, never as protocol errors, so a misbehaving
// tool cannot break the session.
func ToolHandler(t *tools.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ic := tools.InvocationContext{
			CorrelationID: common.CorrelationIDFromContext(ctx),
		}

		result, err := t.Execute(ctx, r.GetArguments(), ic)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(result), nil
	}
}

// textResult renders a tool result as a single text content block.
// String results pass through verbatim; everything else is marshalled to JSON.
func textResult(result interface{}) *mcp.CallToolResult {
	text, ok := result.(string)
	if !ok {
		encoded, err := json.Marshal(result)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: failed to encode result: %v", err))
		}
		text = string(encoded)
	}
	return &mcp.CallToolResult{Content: []mcp.Content{mcp.NewTextContent(text)}}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// RegisterTools registers every registry tool with the MCP server and
// returns the number registered.
func RegisterTools(s *server.MCPServer, registry *tools.Registry) int {
	for _, t := range registry.List() {
		s.AddTool(BuildMCPTool(t), ToolHandler(t))
	}
	return registry.Len()
}
