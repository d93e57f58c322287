package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/common"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/schema"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/tools"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// --- Helpers ---

type searchStubInput struct {
	Query      string   `json:"query" jsonschema:"description=Search query"`
	PerPage    int      `json:"per_page,omitempty" jsonschema:"description=Results per page"`
	Remastered bool     `json:"remastered,omitempty" jsonschema:"description=Only remastered editions"`
	Formats    []string `json:"formats,omitempty" jsonschema:"description=Format filters"`
}

// newTestRegistry builds a registry with stub tools covering the schema
// shapes the bridge has to map.
func newTestRegistry(t *testing.T) *tools.Registry {
	t.Helper()

	searchTool := &tools.Tool{
		Name:        "search_discogs",
		Description: "Search the Discogs database.",
		Category:    "database",
		Parameters:  schema.Reflect(searchStubInput{}),
		Execute: func(ctx context.Context, params map[string]interface{}, ic tools.InvocationContext) (interface{}, error) {
			return map[string]interface{}{
				"params":         params,
				"correlation_id": ic.CorrelationID,
			}, nil
		},
	}

	bannerTool := &tools.Tool{
		Name:        "get_banner",
		Description: "Get the gateway banner.",
		Category:    "database",
		Parameters:  schema.Reflect(struct{}{}),
		Execute: func(ctx context.Context, params map[string]interface{}, ic tools.InvocationContext) (interface{}, error) {
			return "discogs gateway ready", nil
		},
	}

	failingTool := &tools.Tool{
		Name:        "failing_tool",
		Description: "Always fails.",
		Category:    "database",
		Parameters:  schema.Reflect(struct{}{}),
		Execute: func(ctx context.Context, params map[string]interface{}, ic tools.InvocationContext) (interface{}, error) {
			return nil, errors.New("upstream unavailable")
		},
	}

	registry, err := tools.NewRegistry(searchTool, bannerTool, failingTool)
	if err != nil {
		t.Fatalf("failed to build test registry: %v", err)
	}
	return registry
}

// listTools calls tools/list on the MCPServer and returns the tools.
func listTools(t *testing.T, s *mcpserver.MCPServer) []mcpgo.Tool {
	t.Helper()

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`)
	result := s.HandleMessage(t.Context(), msg)

	resp, ok := result.(mcpgo.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T", result)
	}

	resultJSON, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var toolsResult mcpgo.ListToolsResult
	if err := json.Unmarshal(resultJSON, &toolsResult); err != nil {
		t.Fatalf("failed to unmarshal ListToolsResult: %v", err)
	}

	return toolsResult.Tools
}

// callTool calls a tool on the MCPServer and returns the result.
func callTool(t *testing.T, ctx context.Context, s *mcpserver.MCPServer, name string, args map[string]interface{}) *mcpgo.CallToolResult {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, _ := json.Marshal(params)

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":` + string(paramsJSON) + `}`)
	result := s.HandleMessage(ctx, msg)

	resp, ok := result.(mcpgo.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T", result)
	}

	resultJSON, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var toolResult mcpgo.CallToolResult
	if err := json.Unmarshal(resultJSON, &toolResult); err != nil {
		t.Fatalf("failed to unmarshal CallToolResult: %v", err)
	}

	return &toolResult
}

// extractText extracts the text field from an MCP content block.
func extractText(t *testing.T, content mcpgo.Content) string {
	t.Helper()
	contentJSON, _ := json.Marshal(content)
	var tc struct {
		Text string `json:"text"`
	}
	json.Unmarshal(contentJSON, &tc)
	return tc.Text
}

func findMCPTool(toolList []mcpgo.Tool, name string) *mcpgo.Tool {
	for i := range toolList {
		if toolList[i].Name == name {
			return &toolList[i]
		}
	}
	return nil
}

// --- BuildMCPTool Tests ---

func TestBuildMCPTool_NameAndDescription(t *testing.T) {
	registry := newTestRegistry(t)
	src, _ := registry.Lookup("search_discogs")

	tool := BuildMCPTool(src)

	if tool.Name != "search_discogs" {
		t.Errorf("expected name 'search_discogs', got %q", tool.Name)
	}
	if tool.Description != "Search the Discogs database." {
		t.Errorf("unexpected description: %q", tool.Description)
	}
}

func TestBuildMCPTool_StringParam(t *testing.T) {
	registry := newTestRegistry(t)
	src, _ := registry.Lookup("search_discogs")

	tool := BuildMCPTool(src)

	prop, exists := tool.InputSchema.Properties["query"]
	if !exists {
		t.Fatal("expected 'query' in tool schema properties")
	}
	propMap, ok := prop.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map for query property, got %T", prop)
	}
	if propMap["type"] != "string" {
		t.Errorf("expected type 'string', got %v", propMap["type"])
	}
	if propMap["description"] != "Search query" {
		t.Errorf("expected description 'Search query', got %v", propMap["description"])
	}
}

func TestBuildMCPTool_NumberParam(t *testing.T) {
	registry := newTestRegistry(t)
	src, _ := registry.Lookup("search_discogs")

	tool := BuildMCPTool(src)

	prop, exists := tool.InputSchema.Properties["per_page"]
	if !exists {
		t.Fatal("expected 'per_page' in tool schema properties")
	}
	propMap, ok := prop.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map for per_page property, got %T", prop)
	}
	if propMap["type"] != "number" {
		t.Errorf("expected type 'number', got %v", propMap["type"])
	}
}

func TestBuildMCPTool_BooleanParam(t *testing.T) {
	registry := newTestRegistry(t)
	src, _ := registry.Lookup("search_discogs")

	tool := BuildMCPTool(src)

	prop, exists := tool.InputSchema.Properties["remastered"]
	if !exists {
		t.Fatal("expected 'remastered' in tool schema properties")
	}
	propMap, ok := prop.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map for remastered property, got %T", prop)
	}
	if propMap["type"] != "boolean" {
		t.Errorf("expected type 'boolean', got %v", propMap["type"])
	}
}

func TestBuildMCPTool_ArrayParam(t *testing.T) {
	registry := newTestRegistry(t)
	src, _ := registry.Lookup("search_discogs")

	tool := BuildMCPTool(src)

	prop, exists := tool.InputSchema.Properties["formats"]
	if !exists {
		t.Fatal("expected 'formats' in tool schema properties")
	}
	propMap, ok := prop.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map for formats property, got %T", prop)
	}
	if propMap["type"] != "array" {
		t.Errorf("expected type 'array', got %v", propMap["type"])
	}
}

func TestBuildMCPTool_RequiredParam(t *testing.T) {
	registry := newTestRegistry(t)
	src, _ := registry.Lookup("search_discogs")

	tool := BuildMCPTool(src)

	found := false
	for _, r := range tool.InputSchema.Required {
		if r == "query" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected 'query' in required list")
	}
}

func TestBuildMCPTool_OptionalParam(t *testing.T) {
	registry := newTestRegistry(t)
	src, _ := registry.Lookup("search_discogs")

	tool := BuildMCPTool(src)

	for _, r := range tool.InputSchema.Required {
		if r == "per_page" {
			t.Error("expected 'per_page' to NOT be in required list")
		}
	}
}

func TestBuildMCPTool_NoParams(t *testing.T) {
	registry := newTestRegistry(t)
	src, _ := registry.Lookup("get_banner")

	tool := BuildMCPTool(src)

	if len(tool.InputSchema.Properties) != 0 {
		t.Errorf("expected no properties, got %d", len(tool.InputSchema.Properties))
	}
}

// --- RegisterTools Tests ---

func TestRegisterTools_Count(t *testing.T) {
	registry := newTestRegistry(t)

	s := mcpserver.NewMCPServer("test", "1.0.0", mcpserver.WithToolCapabilities(true))
	count := RegisterTools(s, registry)

	if count != registry.Len() {
		t.Errorf("expected RegisterTools to return %d, got %d", registry.Len(), count)
	}

	listed := listTools(t, s)
	if len(listed) != registry.Len() {
		t.Errorf("expected %d registered tools, got %d", registry.Len(), len(listed))
	}
}

func TestRegisterTools_ToolNames(t *testing.T) {
	registry := newTestRegistry(t)

	s := mcpserver.NewMCPServer("test", "1.0.0", mcpserver.WithToolCapabilities(true))
	RegisterTools(s, registry)

	listed := listTools(t, s)
	registered := make(map[string]bool)
	for _, tool := range listed {
		registered[tool.Name] = true
	}

	for _, name := range registry.Names() {
		if !registered[name] {
			t.Errorf("expected tool %q to be registered", name)
		}
	}
}

func TestRegisterTools_ToolsHaveDescriptions(t *testing.T) {
	registry := newTestRegistry(t)

	s := mcpserver.NewMCPServer("test", "1.0.0", mcpserver.WithToolCapabilities(true))
	RegisterTools(s, registry)

	for _, tool := range listTools(t, s) {
		if tool.Description == "" {
			t.Errorf("tool %q has empty description", tool.Name)
		}
	}
}

// --- ToolHandler Tests ---

func TestToolHandler_Success(t *testing.T) {
	registry := newTestRegistry(t)

	s := mcpserver.NewMCPServer("test", "1.0.0", mcpserver.WithToolCapabilities(true))
	RegisterTools(s, registry)

	result := callTool(t, t.Context(), s, "search_discogs", map[string]interface{}{
		"query": "Rumours",
	})

	if result.IsError {
		text := extractText(t, result.Content[0])
		t.Fatalf("expected non-error result, got: %s", text)
	}

	text := extractText(t, result.Content[0])
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("expected JSON text content, got: %s", text)
	}
	params, ok := payload["params"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected params object in result, got: %s", text)
	}
	if params["query"] != "Rumours" {
		t.Errorf("expected query 'Rumours' echoed, got %v", params["query"])
	}
}

func TestToolHandler_StringResultVerbatim(t *testing.T) {
	registry := newTestRegistry(t)

	s := mcpserver.NewMCPServer("test", "1.0.0", mcpserver.WithToolCapabilities(true))
	RegisterTools(s, registry)

	result := callTool(t, t.Context(), s, "get_banner", map[string]interface{}{})

	if result.IsError {
		t.Error("expected non-error result")
	}
	text := extractText(t, result.Content[0])
	if text != "discogs gateway ready" {
		t.Errorf("expected verbatim string result, got %q", text)
	}
}

func TestToolHandler_Error(t *testing.T) {
	registry := newTestRegistry(t)

	s := mcpserver.NewMCPServer("test", "1.0.0", mcpserver.WithToolCapabilities(true))
	RegisterTools(s, registry)

	result := callTool(t, t.Context(), s, "failing_tool", map[string]interface{}{})

	if !result.IsError {
		t.Fatal("expected error result for failing tool")
	}
	text := extractText(t, result.Content[0])
	if !strings.Contains(text, "upstream unavailable") {
		t.Errorf("expected error text to mention the failure, got: %s", text)
	}
}

func TestToolHandler_CorrelationIDReachesTool(t *testing.T) {
	registry := newTestRegistry(t)

	s := mcpserver.NewMCPServer("test", "1.0.0", mcpserver.WithToolCapabilities(true))
	RegisterTools(s, registry)

	ctx := common.ContextWithCorrelationID(t.Context(), "corr-mcp-123")
	result := callTool(t, ctx, s, "search_discogs", map[string]interface{}{
		"query": "Tusk",
	})

	if result.IsError {
		t.Fatal("expected non-error result")
	}
	text := extractText(t, result.Content[0])
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("expected JSON text content, got: %s", text)
	}
	if payload["correlation_id"] != "corr-mcp-123" {
		t.Errorf("expected correlation ID 'corr-mcp-123', got %v", payload["correlation_id"])
	}
}

// --- Version Tool Tests ---

func TestVersionTool_Definition(t *testing.T) {
	tool := VersionTool()

	if tool.Name != "get_version" {
		t.Errorf("expected name 'get_version', got %q", tool.Name)
	}
	if tool.Description == "" {
		t.Error("expected non-empty description")
	}
}

func TestVersionToolHandler_ReturnsVersion(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "1.0.0", mcpserver.WithToolCapabilities(true))
	s.AddTool(VersionTool(), VersionToolHandler())

	result := callTool(t, t.Context(), s, "get_version", map[string]interface{}{})

	if result.IsError {
		t.Fatal("expected non-error result")
	}
	text := extractText(t, result.Content[0])
	var info map[string]string
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		t.Fatalf("expected JSON version info, got: %s", text)
	}
	if info["version"] == "" {
		t.Error("expected non-empty version field")
	}
}

// --- Handler Tests ---

func TestNewHandler_RegistersAllTools(t *testing.T) {
	registry := newTestRegistry(t)
	h := NewHandler("discogs-mcp-server", registry, common.NewSilentLogger())

	listed := listTools(t, h.Server())

	// Registry tools plus get_version.
	if len(listed) != registry.Len()+1 {
		t.Errorf("expected %d tools, got %d", registry.Len()+1, len(listed))
	}
	if findMCPTool(listed, "get_version") == nil {
		t.Error("expected get_version to be registered")
	}
	if findMCPTool(listed, "search_discogs") == nil {
		t.Error("expected search_discogs to be registered")
	}
}

func TestNewHandler_ServerAccessor(t *testing.T) {
	registry := newTestRegistry(t)
	h := NewHandler("discogs-mcp-server", registry, common.NewSilentLogger())

	if h.Server() == nil {
		t.Fatal("expected non-nil underlying MCP server")
	}
}
