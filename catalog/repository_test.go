package catalog

import (
	"strings"
	"testing"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Classes: []Class{
			{
				Name:   "PrimaryClient",
				Module: "lib.api",
				Methods: []Method{
					{Name: "__init__", Signature: "__init__(baseurl=None)", Docstring: "constructor"},
					{Name: "get_thing", Signature: "get_thing(id)", Docstring: "Gets a thing"},
					{Name: "_handle", Signature: "_handle(resp)", Docstring: "internal"},
					{Name: "post_thing", Signature: "post_thing(thing)", Docstring: "Posts a thing"},
				},
			},
			{
				Name:    "Helper",
				Module:  "lib",
				Methods: []Method{{Name: "run", Signature: "run()", Docstring: "runs"}},
			},
		},
		Tools: []Function{
			{
				Name:       "do_stuff",
				Module:     "lib.tools",
				Signature:  "do_stuff(client)",
				Type:       TypeFunction,
				Parameters: []Parameter{{Name: "client", Type: "Client", Required: true}},
			},
		},
		Modules: []string{"lib", "lib.api", "lib.tools"},
	}
}

func TestFunctionsDerivation(t *testing.T) {
	repo := New(testSnapshot(), Options{PrimaryClass: "PrimaryClient"})

	got := repo.Functions()
	if len(got) != 2 {
		t.Fatalf("Functions() returned %d records, want 2", len(got))
	}

	for i, want := range []string{"get_thing", "post_thing"} {
		if got[i].Name != want {
			t.Errorf("Functions()[%d].Name = %q, want %q", i, got[i].Name, want)
		}
	}
	for _, fn := range got {
		if fn.Module != "lib.api.PrimaryClient" {
			t.Errorf("Functions() %s: module = %q, want %q", fn.Name, fn.Module, "lib.api.PrimaryClient")
		}
		if fn.Type != TypeMethod {
			t.Errorf("Functions() %s: type = %q, want %q", fn.Name, fn.Type, TypeMethod)
		}
	}
}

func TestFunctionsExcludesConstructorAndPrivate(t *testing.T) {
	repo := New(testSnapshot(), Options{PrimaryClass: "PrimaryClient"})
	for _, fn := range repo.Functions() {
		if fn.Name == "__init__" {
			t.Error("Functions() includes the constructor")
		}
		if strings.HasPrefix(fn.Name, "_") {
			t.Errorf("Functions() includes private method %q", fn.Name)
		}
	}
}

func TestFunctionsMissingPrimaryClass(t *testing.T) {
	repo := New(testSnapshot(), Options{PrimaryClass: "DoesNotExist"})

	got := repo.Functions()
	if got == nil {
		t.Fatal("Functions() = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Fatalf("Functions() returned %d records, want 0", len(got))
	}
}

func TestDefaultPrimaryClass(t *testing.T) {
	repo := New(testSnapshot(), Options{})
	if repo.PrimaryClass() != DefaultPrimaryClass {
		t.Fatalf("PrimaryClass() = %q, want %q", repo.PrimaryClass(), DefaultPrimaryClass)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	repo := New(testSnapshot(), Options{PrimaryClass: "PrimaryClient"})

	classes := repo.Classes()
	classes[0].Name = "mutated"
	classes[0].Methods[0].Name = "mutated"
	if repo.Classes()[0].Name != "PrimaryClient" {
		t.Error("mutating Classes() result leaked into the repository")
	}
	if repo.Classes()[0].Methods[0].Name != "__init__" {
		t.Error("mutating a returned method leaked into the repository")
	}

	tools := repo.Tools()
	tools[0].Parameters[0].Name = "mutated"
	if repo.Tools()[0].Parameters[0].Name != "client" {
		t.Error("mutating a returned parameter leaked into the repository")
	}

	modules := repo.Modules()
	modules[0] = "mutated"
	if repo.Modules()[0] != "lib" {
		t.Error("mutating Modules() result leaked into the repository")
	}
}

func TestDefaultSnapshot(t *testing.T) {
	repo := NewDefault()

	classes := repo.Classes()
	if len(classes) != 11 {
		t.Fatalf("default snapshot has %d classes, want 11", len(classes))
	}

	byName := make(map[string]Class, len(classes))
	for _, class := range classes {
		byName[class.Name] = class
	}
	for _, name := range []string{"Client", "OpenReviewClient", "Invitation", "Note", "Group", "Edge", "Tag", "Edit", "Profile", "Venue", "GroupBuilder"} {
		if _, ok := byName[name]; !ok {
			t.Errorf("default snapshot missing class %q", name)
		}
	}

	primary, ok := byName[DefaultPrimaryClass]
	if !ok {
		t.Fatalf("default snapshot missing primary class %q", DefaultPrimaryClass)
	}
	if primary.Module != "openreview.api" {
		t.Errorf("primary class module = %q, want %q", primary.Module, "openreview.api")
	}

	functions := repo.Functions()
	if len(functions) == 0 {
		t.Fatal("default snapshot derives no functions")
	}
	for _, fn := range functions {
		if fn.Module != "openreview.api.OpenReviewClient" {
			t.Fatalf("derived function %s has module %q", fn.Name, fn.Module)
		}
	}

	tools := repo.Tools()
	if len(tools) != 2 {
		t.Fatalf("default snapshot has %d tools, want 2", len(tools))
	}
	for _, tool := range tools {
		if tool.Type != TypeFunction {
			t.Errorf("tool %s has type %q, want %q", tool.Name, tool.Type, TypeFunction)
		}
		if tool.Module != "openreview.tools" {
			t.Errorf("tool %s has module %q, want %q", tool.Name, tool.Module, "openreview.tools")
		}
		if len(tool.Parameters) == 0 {
			t.Errorf("tool %s has no parameter documentation", tool.Name)
		}
	}

	if len(repo.Modules()) != 4 {
		t.Fatalf("default snapshot has %d modules, want 4", len(repo.Modules()))
	}
}
