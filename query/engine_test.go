package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/openreview/openreview-mcp/catalog"
)

func testEngine() *Engine {
	snapshot := catalog.Snapshot{
		Classes: []catalog.Class{
			{
				Name:   "OpenReviewClient",
				Module: "openreview.api",
				Methods: []catalog.Method{
					{Name: "__init__", Signature: "__init__(baseurl=None)", Docstring: "Initialize the client"},
					{Name: "get_note", Signature: "get_note(id, details=None)", Docstring: "Get a single Note by id if available"},
					{Name: "get_profile", Signature: "get_profile(email_or_id=None)", Docstring: "Get a single Profile by id, if available"},
					{Name: "_internal_helper", Signature: "_internal_helper()", Docstring: "internal"},
				},
			},
			{
				Name:      "Note",
				Module:    "openreview.api",
				Docstring: "Represents a note",
				Methods:   []catalog.Method{{Name: "to_json", Signature: "to_json()", Docstring: "Converts Note instance to a dictionary"}},
			},
		},
		Tools: []catalog.Function{
			{
				Name:      "get_profiles",
				Docstring: "Helper function that repeatedly queries for profiles",
				Module:    "openreview.tools",
				Signature: "get_profiles(client, ids_or_emails)",
				Type:      catalog.TypeFunction,
			},
		},
		Modules: []string{"openreview", "openreview.api", "openreview.tools"},
	}
	return New(catalog.New(snapshot, catalog.Options{}))
}

func TestFunctionDetailsFound(t *testing.T) {
	engine := testEngine()

	detail, err := engine.FunctionDetails("get_note")
	if err != nil {
		t.Fatalf("FunctionDetails(get_note) error: %v", err)
	}
	if detail.Name != "get_note" {
		t.Errorf("name = %q, want %q", detail.Name, "get_note")
	}
	if detail.Module != "openreview.api.OpenReviewClient" {
		t.Errorf("module = %q, want %q", detail.Module, "openreview.api.OpenReviewClient")
	}
	if detail.Type != catalog.TypeMethod {
		t.Errorf("function type = %q, want %q", detail.Type, catalog.TypeMethod)
	}
	if detail.Parameters == nil || len(detail.Parameters) != 0 {
		t.Errorf("parameters = %v, want empty placeholder", detail.Parameters)
	}
	if detail.Examples == nil || len(detail.Examples) != 0 {
		t.Errorf("examples = %v, want empty placeholder", detail.Examples)
	}
	if detail.RelatedFunctions == nil || len(detail.RelatedFunctions) != 0 {
		t.Errorf("related functions = %v, want empty placeholder", detail.RelatedFunctions)
	}
	if detail.ReturnType != "unknown" {
		t.Errorf("return type = %q, want %q", detail.ReturnType, "unknown")
	}
}

func TestFunctionDetailsEveryDerivedName(t *testing.T) {
	engine := testEngine()
	for _, fn := range engine.ListFunctions("") {
		detail, err := engine.FunctionDetails(fn.Name)
		if err != nil {
			t.Fatalf("FunctionDetails(%s) error: %v", fn.Name, err)
		}
		if detail.Name != fn.Name {
			t.Errorf("FunctionDetails(%s) returned name %q", fn.Name, detail.Name)
		}
	}
}

func TestFunctionDetailsNotFound(t *testing.T) {
	engine := testEngine()

	_, err := engine.FunctionDetails("no_such_function")
	if !errors.Is(err, ErrFunctionNotFound) {
		t.Fatalf("error = %v, want ErrFunctionNotFound", err)
	}
	if !strings.Contains(err.Error(), "no_such_function") {
		t.Errorf("error %q does not name the requested identifier", err)
	}

	// Tools are not part of the derived view; exact lookup must miss them.
	if _, err := engine.FunctionDetails("get_profiles"); !errors.Is(err, ErrFunctionNotFound) {
		t.Fatalf("FunctionDetails(get_profiles) error = %v, want ErrFunctionNotFound", err)
	}
}

func TestFunctionDetailsValidation(t *testing.T) {
	engine := testEngine()
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := engine.FunctionDetails(name)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("FunctionDetails(%q) error = %v, want *ValidationError", name, err)
		}
		if verr.Param != "name" {
			t.Errorf("validation error names parameter %q, want %q", verr.Param, "name")
		}
	}
}

func TestFunctionDetailsCaseSensitive(t *testing.T) {
	engine := testEngine()
	if _, err := engine.FunctionDetails("Get_Note"); !errors.Is(err, ErrFunctionNotFound) {
		t.Fatalf("FunctionDetails(Get_Note) error = %v, want ErrFunctionNotFound", err)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	engine := testEngine()
	for _, q := range []string{"", "   ", "\t"} {
		got := engine.Search(q)
		if got == nil {
			t.Fatalf("Search(%q) = nil, want empty slice", q)
		}
		if len(got) != 0 {
			t.Fatalf("Search(%q) returned %d results, want 0", q, len(got))
		}
	}
}

func TestSearchMatchesNameAndDocstring(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		query string
		want  []string
	}{
		// Name match, case-insensitive, derived functions before tools.
		{"PROFILE", []string{"get_profile", "get_profiles"}},
		// Docstring-only match.
		{"repeatedly queries", []string{"get_profiles"}},
		{"get_note", []string{"get_note"}},
		{"zzz-no-match", []string{}},
	}
	for _, tt := range tests {
		got := engine.Search(tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q) returned %d results, want %d", tt.query, len(got), len(tt.want))
			continue
		}
		for i, fn := range got {
			if fn.Name != tt.want[i] {
				t.Errorf("Search(%q)[%d] = %q, want %q", tt.query, i, fn.Name, tt.want[i])
			}
		}
	}
}

func TestSearchSoundAndComplete(t *testing.T) {
	engine := testEngine()
	query := "get"
	q := strings.ToLower(query)

	got := engine.Search(query)
	matched := make(map[string]bool, len(got))
	for _, fn := range got {
		if !strings.Contains(strings.ToLower(fn.Name), q) &&
			!strings.Contains(strings.ToLower(fn.Docstring), q) {
			t.Errorf("Search(%q) returned non-matching record %q", query, fn.Name)
		}
		matched[fn.Name] = true
	}

	o := engine.Overview()
	for _, fn := range append(o.Functions, o.Tools...) {
		if strings.Contains(strings.ToLower(fn.Name), q) ||
			strings.Contains(strings.ToLower(fn.Docstring), q) {
			if !matched[fn.Name] {
				t.Errorf("Search(%q) missed matching record %q", query, fn.Name)
			}
		}
	}
}

func TestListFunctionsModuleFilter(t *testing.T) {
	engine := testEngine()

	all := engine.ListFunctions("")
	if len(all) != 2 {
		t.Fatalf("ListFunctions(\"\") returned %d records, want 2", len(all))
	}

	exact := engine.ListFunctions("openreview.api.OpenReviewClient")
	if len(exact) != 2 {
		t.Fatalf("exact module filter returned %d records, want 2", len(exact))
	}

	// Exact match only; a substring of the module must not match.
	if got := engine.ListFunctions("openreview.api"); len(got) != 0 {
		t.Fatalf("substring module filter returned %d records, want 0", len(got))
	}
}

func TestListClassesMethodToggle(t *testing.T) {
	engine := testEngine()

	with := engine.ListClasses(true)
	if len(with) != 2 {
		t.Fatalf("ListClasses(true) returned %d classes, want 2", len(with))
	}
	if len(with[0].Methods) != 4 {
		t.Errorf("ListClasses(true) class %s has %d methods, want 4", with[0].Name, len(with[0].Methods))
	}

	without := engine.ListClasses(false)
	for _, class := range without {
		if len(class.Methods) != 0 {
			t.Errorf("ListClasses(false) class %s still carries %d methods", class.Name, len(class.Methods))
		}
	}
}

func TestOverviewStatisticsConsistent(t *testing.T) {
	engine := testEngine()
	o := engine.Overview()

	if o.Statistics.TotalFunctions != len(o.Functions) {
		t.Errorf("total_functions = %d, functions len = %d", o.Statistics.TotalFunctions, len(o.Functions))
	}
	if o.Statistics.TotalClasses != len(o.Classes) {
		t.Errorf("total_classes = %d, classes len = %d", o.Statistics.TotalClasses, len(o.Classes))
	}
	if o.Statistics.TotalTools != len(o.Tools) {
		t.Errorf("total_tools = %d, tools len = %d", o.Statistics.TotalTools, len(o.Tools))
	}
	if o.Statistics.TotalModules != len(o.Modules) {
		t.Errorf("total_modules = %d, modules len = %d", o.Statistics.TotalModules, len(o.Modules))
	}
}

func TestOverviewAPIVersionGuide(t *testing.T) {
	engine := testEngine()
	o := engine.Overview()

	if o.APIVersions.APIv1.ClientClass != "openreview.Client" {
		t.Errorf("api_1 client class = %q", o.APIVersions.APIv1.ClientClass)
	}
	if o.APIVersions.APIv2.ClientClass != "openreview.api.OpenReviewClient" {
		t.Errorf("api_2 client class = %q", o.APIVersions.APIv2.ClientClass)
	}
	if o.APIVersions.APIv2.BaseURL != "https://api2.openreview.net" {
		t.Errorf("api_2 baseurl = %q", o.APIVersions.APIv2.BaseURL)
	}
	if o.Version == "" || o.LastUpdated == "" {
		t.Error("overview version metadata is empty")
	}
}
