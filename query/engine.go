package query

import (
	"fmt"
	"strings"

	"github.com/openreview/openreview-mcp/catalog"
)

const (
	// libraryVersion is reported in the overview. The catalog carries no
	// upstream package metadata, so the version is unresolved.
	libraryVersion = "unknown"

	// datasetLastUpdated records when the literal dataset was last synced
	// against the upstream library.
	datasetLastUpdated = "2024-01-01"
)

// Engine answers queries against one repository. The zero value is not
// usable; construct with New.
type Engine struct {
	repo *catalog.Repository
}

// New creates an Engine over the given repository.
func New(repo *catalog.Repository) *Engine {
	return &Engine{repo: repo}
}

// FunctionDetails looks up a function by exact, case-sensitive name in the
// derived-functions view (standalone tools are not consulted). The name
// must be non-empty after trimming, otherwise a *ValidationError is
// returned. A well-formed name that matches nothing yields
// ErrFunctionNotFound wrapped with the requested identifier.
func (e *Engine) FunctionDetails(name string) (*FunctionDetail, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Param: "name", Reason: "must be a non-empty string"}
	}
	for _, fn := range e.repo.Functions() {
		if fn.Name != name {
			continue
		}
		return &FunctionDetail{
			Name:             fn.Name,
			Docstring:        fn.Docstring,
			Module:           fn.Module,
			Signature:        fn.Signature,
			Type:             fn.Type,
			Parameters:       []catalog.Parameter{},
			ReturnType:       "unknown",
			Examples:         []string{},
			RelatedFunctions: []string{},
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
}

// Search returns every function whose name or docstring contains the
// query as a case-insensitive substring, scanning derived functions first
// and standalone tools second. Result order follows that concatenated scan
// order; matches are not ranked. An empty or whitespace-only query returns
// zero results.
func (e *Engine) Search(query string) []catalog.Function {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []catalog.Function{}
	}

	matches := []catalog.Function{}
	for _, fn := range append(e.repo.Functions(), e.repo.Tools()...) {
		if strings.Contains(strings.ToLower(fn.Name), q) ||
			strings.Contains(strings.ToLower(fn.Docstring), q) {
			matches = append(matches, fn)
		}
	}
	return matches
}

// ListFunctions returns the derived-functions view. A non-empty
// moduleFilter restricts the result to records whose module field equals
// the filter exactly; there is no prefix or glob matching.
func (e *Engine) ListFunctions(moduleFilter string) []catalog.Function {
	functions := e.repo.Functions()
	if moduleFilter == "" {
		return functions
	}
	filtered := []catalog.Function{}
	for _, fn := range functions {
		if fn.Module == moduleFilter {
			filtered = append(filtered, fn)
		}
	}
	return filtered
}

// ListClasses returns every catalogued class. When includeMethods is
// false the method sequences are stripped, which also drops the field
// from the JSON encoding.
func (e *Engine) ListClasses(includeMethods bool) []catalog.Class {
	classes := e.repo.Classes()
	if includeMethods {
		return classes
	}
	for i := range classes {
		classes[i].Methods = nil
	}
	return classes
}

// Overview assembles the aggregate library report. Counts are taken from
// the views gathered in this call, so they always agree with the returned
// slices.
func (e *Engine) Overview() Overview {
	functions := e.repo.Functions()
	classes := e.repo.Classes()
	tools := e.repo.Tools()
	modules := e.repo.Modules()

	return Overview{
		Functions: functions,
		Classes:   classes,
		Tools:     tools,
		Modules:   modules,
		Statistics: Statistics{
			TotalFunctions: len(functions),
			TotalClasses:   len(classes),
			TotalTools:     len(tools),
			TotalModules:   len(modules),
		},
		APIVersions: APIVersions{
			APIv1: APIVersion{
				ClientClass: "openreview.Client",
				BaseURL:     "https://api.openreview.net",
				Description: "Legacy API for older venues - documented in this overview",
			},
			APIv2: APIVersion{
				ClientClass: "openreview.api.OpenReviewClient",
				BaseURL:     "https://api2.openreview.net",
				Description: "Current API (preferred) - documented in this overview",
			},
			ImportantNote: "Both API 1 and API 2 classes are documented. Check the class module to know which API a client targets.",
		},
		Version:     libraryVersion,
		LastUpdated: datasetLastUpdated,
	}
}
