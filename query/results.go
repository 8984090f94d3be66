package query

import "github.com/openreview/openreview-mcp/catalog"

// FunctionDetail is the result of an exact-name lookup: the matched
// function's fields plus placeholder extension fields. Parameters,
// Examples, and RelatedFunctions are always present and empty for derived
// method records; ReturnType is always "unknown". They are acknowledged
// extension points, not computed values.
type FunctionDetail struct {
	Name             string               `json:"name"`
	Docstring        string               `json:"docstring"`
	Module           string               `json:"module"`
	Signature        string               `json:"signature"`
	Type             catalog.FunctionType `json:"function_type"`
	Parameters       []catalog.Parameter  `json:"parameters"`
	ReturnType       string               `json:"return_type"`
	Examples         []string             `json:"examples"`
	RelatedFunctions []string             `json:"related_functions"`
}

// Statistics holds the counts reported by Overview. Counts are computed
// from the views returned in the same call, never cached, so they are
// always consistent with the accompanying slices.
type Statistics struct {
	TotalFunctions int `json:"total_functions"`
	TotalClasses   int `json:"total_classes"`
	TotalTools     int `json:"total_tools"`
	TotalModules   int `json:"total_modules"`
}

// APIVersion describes one generation of the catalogued library's API.
type APIVersion struct {
	ClientClass string `json:"client_class"`
	BaseURL     string `json:"baseurl"`
	Description string `json:"description"`
}

// APIVersions is the API 1 vs API 2 orientation guide included in the
// overview so consumers know which client class to reach for.
type APIVersions struct {
	APIv1         APIVersion `json:"api_1"`
	APIv2         APIVersion `json:"api_2"`
	ImportantNote string     `json:"important_note"`
}

// Overview is the aggregate library report: every view in full, the module
// list, call-time statistics, and the API version guide.
type Overview struct {
	Functions   []catalog.Function `json:"functions"`
	Classes     []catalog.Class    `json:"classes"`
	Tools       []catalog.Function `json:"tools"`
	Modules     []string           `json:"modules"`
	Statistics  Statistics         `json:"statistics"`
	APIVersions APIVersions        `json:"api_versions"`
	Version     string             `json:"version"`
	LastUpdated string             `json:"last_updated"`
}
