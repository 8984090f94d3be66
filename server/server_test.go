package server

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/openreview/openreview-mcp/catalog"
)

func connect(t *testing.T, s *Server) *mcp.ClientSession {
	t.Helper()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ctx := context.Background()

	serverSession, err := s.MCP().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect failed: %v", err)
	}
	t.Cleanup(func() {
		_ = serverSession.Close()
	})

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect failed: %v", err)
	}
	t.Cleanup(func() {
		_ = clientSession.Close()
	})
	return clientSession
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) map[string]any {
	t.Helper()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s) failed: %v", name, err)
	}
	if result.IsError {
		t.Fatalf("CallTool(%s) returned tool error: %v", name, result.Content)
	}
	payload, ok := result.StructuredContent.(map[string]any)
	if !ok {
		t.Fatalf("CallTool(%s) structured content is %T, want map", name, result.StructuredContent)
	}
	return payload
}

func TestCapabilitiesListsRegisteredTools(t *testing.T) {
	s := New(Config{})
	session := connect(t, s)

	payload := callTool(t, session, "capabilities", nil)

	tools, ok := payload["tools"].([]any)
	if !ok {
		t.Fatalf("tools field is %T, want list", payload["tools"])
	}
	want := []string{"list_functions", "list_classes", "search", "function_details", "get_tools", "overview", "capabilities", "health"}
	if len(tools) != len(want) {
		t.Fatalf("capabilities lists %d tools, want %d", len(tools), len(want))
	}
	for i, name := range want {
		if tools[i] != name {
			t.Errorf("tools[%d] = %v, want %q", i, tools[i], name)
		}
	}
	if int(payload["tool_count"].(float64)) != len(want) {
		t.Errorf("tool_count = %v, want %d", payload["tool_count"], len(want))
	}
}

func TestHealth(t *testing.T) {
	s := New(Config{ServerInfo: ServerInfo{Name: "catalog-under-test", Version: "9.9.9"}})
	session := connect(t, s)

	payload := callTool(t, session, "health", nil)
	if payload["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", payload["status"])
	}
	if payload["server"] != "catalog-under-test" {
		t.Errorf("server = %v, want catalog-under-test", payload["server"])
	}
	if payload["version"] != "9.9.9" {
		t.Errorf("version = %v, want 9.9.9", payload["version"])
	}
}

func TestListFunctionsEnvelope(t *testing.T) {
	s := New(Config{})
	session := connect(t, s)

	payload := callTool(t, session, "list_functions", nil)
	if payload["status"] != "ok" {
		t.Errorf("status = %v, want ok", payload["status"])
	}
	functions, ok := payload["functions"].([]any)
	if !ok {
		t.Fatalf("functions field is %T, want list", payload["functions"])
	}
	if int(payload["count"].(float64)) != len(functions) {
		t.Errorf("count = %v, functions len = %d", payload["count"], len(functions))
	}
	if len(functions) == 0 {
		t.Fatal("default dataset yields no functions")
	}
	first := functions[0].(map[string]any)
	if first["function_type"] != "method" {
		t.Errorf("function_type = %v, want method", first["function_type"])
	}
	if first["module"] != "openreview.api.OpenReviewClient" {
		t.Errorf("module = %v, want openreview.api.OpenReviewClient", first["module"])
	}
}

func TestListFunctionsModuleFilter(t *testing.T) {
	s := New(Config{})
	session := connect(t, s)

	payload := callTool(t, session, "list_functions", map[string]any{
		"module_filter": "no.such.module",
	})
	if int(payload["count"].(float64)) != 0 {
		t.Errorf("count = %v, want 0 for unmatched filter", payload["count"])
	}
	metadata := payload["metadata"].(map[string]any)
	if metadata["module_filter"] != "no.such.module" {
		t.Errorf("metadata module_filter = %v", metadata["module_filter"])
	}
}

func TestListClassesMethodToggle(t *testing.T) {
	s := New(Config{})
	session := connect(t, s)

	withMethods := callTool(t, session, "list_classes", nil)
	classes := withMethods["classes"].([]any)
	if len(classes) == 0 {
		t.Fatal("no classes returned")
	}
	if _, ok := classes[0].(map[string]any)["methods"]; !ok {
		t.Error("include_methods default did not include methods")
	}

	stripped := callTool(t, session, "list_classes", map[string]any{"include_methods": false})
	for _, raw := range stripped["classes"].([]any) {
		class := raw.(map[string]any)
		if methods, ok := class["methods"]; ok {
			t.Errorf("class %v still carries methods: %v", class["name"], methods)
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	s := New(Config{})
	session := connect(t, s)

	payload := callTool(t, session, "search", map[string]any{"query": "   "})
	if payload["status"] != "ok" {
		t.Errorf("status = %v, want ok", payload["status"])
	}
	if int(payload["count"].(float64)) != 0 {
		t.Errorf("count = %v, want 0", payload["count"])
	}
}

func TestSearchFindsTools(t *testing.T) {
	s := New(Config{})
	session := connect(t, s)

	payload := callTool(t, session, "search", map[string]any{"query": "reviewer service"})
	results := payload["results"].([]any)
	if len(results) == 0 {
		t.Fatal("search over tool docstrings returned nothing")
	}
	found := false
	for _, raw := range results {
		if raw.(map[string]any)["name"] == "get_own_reviews" {
			found = true
		}
	}
	if !found {
		t.Error("expected get_own_reviews in results")
	}
}

func TestFunctionDetailsFound(t *testing.T) {
	s := New(Config{})
	session := connect(t, s)

	payload := callTool(t, session, "function_details", map[string]any{"name": "get_profile"})
	if payload["name"] != "get_profile" {
		t.Fatalf("name = %v, want get_profile", payload["name"])
	}
	for _, field := range []string{"parameters", "examples", "related_functions"} {
		value, ok := payload[field].([]any)
		if !ok {
			t.Errorf("field %s is %T, want list", field, payload[field])
			continue
		}
		if len(value) != 0 {
			t.Errorf("field %s = %v, want empty placeholder", field, value)
		}
	}
	if payload["return_type"] != "unknown" {
		t.Errorf("return_type = %v, want unknown", payload["return_type"])
	}
}

func TestFunctionDetailsNotFoundIsInBand(t *testing.T) {
	s := New(Config{})
	session := connect(t, s)

	payload := callTool(t, session, "function_details", map[string]any{"name": "definitely_absent"})
	msg, ok := payload["error"].(string)
	if !ok {
		t.Fatalf("payload = %v, want in-band error message", payload)
	}
	if !strings.Contains(msg, "definitely_absent") {
		t.Errorf("error message %q does not name the identifier", msg)
	}
}

func TestFunctionDetailsValidationIsToolError(t *testing.T) {
	s := New(Config{})
	session := connect(t, s)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "function_details",
		Arguments: map[string]any{"name": "   "},
	})
	if err != nil {
		t.Fatalf("CallTool failed at the protocol level: %v", err)
	}
	if !result.IsError {
		t.Fatal("whitespace name did not produce a tool error")
	}
}

func TestOverviewStatistics(t *testing.T) {
	s := New(Config{})
	session := connect(t, s)

	payload := callTool(t, session, "overview", nil)
	stats := payload["statistics"].(map[string]any)

	for field, view := range map[string]string{
		"total_functions": "functions",
		"total_classes":   "classes",
		"total_tools":     "tools",
		"total_modules":   "modules",
	} {
		want := len(payload[view].([]any))
		if int(stats[field].(float64)) != want {
			t.Errorf("%s = %v, want %d", field, stats[field], want)
		}
	}

	versions := payload["api_versions"].(map[string]any)
	api2 := versions["api_2"].(map[string]any)
	if api2["client_class"] != "openreview.api.OpenReviewClient" {
		t.Errorf("api_2 client_class = %v", api2["client_class"])
	}
}

func TestGetTools(t *testing.T) {
	s := New(Config{})
	session := connect(t, s)

	payload := callTool(t, session, "get_tools", nil)
	tools := payload["tools"].([]any)
	if int(payload["count"].(float64)) != len(tools) {
		t.Errorf("count = %v, tools len = %d", payload["count"], len(tools))
	}
	if len(tools) != 2 {
		t.Fatalf("got %d tools, want 2", len(tools))
	}
	first := tools[0].(map[string]any)
	if first["name"] != "get_profiles" {
		t.Errorf("first tool = %v, want get_profiles", first["name"])
	}
	params := first["parameters"].([]any)
	if len(params) == 0 {
		t.Error("tool parameters missing")
	}
}

func TestCustomRepository(t *testing.T) {
	snapshot := catalog.Snapshot{
		Classes: []catalog.Class{{
			Name:   "OpenReviewClient",
			Module: "openreview.api",
			Methods: []catalog.Method{
				{Name: "__init__", Signature: "__init__()"},
				{Name: "get_note", Signature: "get_note(id, details=None)", Docstring: "Get a single Note"},
				{Name: "_internal_helper", Signature: "_internal_helper()"},
			},
		}},
		Modules: []string{"openreview.api"},
	}
	s := New(Config{Repository: catalog.New(snapshot, catalog.Options{})})
	session := connect(t, s)

	payload := callTool(t, session, "list_functions", nil)
	functions := payload["functions"].([]any)
	if len(functions) != 1 {
		t.Fatalf("got %d functions, want 1", len(functions))
	}
	fn := functions[0].(map[string]any)
	if fn["name"] != "get_note" {
		t.Errorf("name = %v, want get_note", fn["name"])
	}
	if fn["module"] != "openreview.api.OpenReviewClient" {
		t.Errorf("module = %v", fn["module"])
	}
}
