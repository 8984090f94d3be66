package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/openreview/openreview-mcp/catalog"
	"github.com/openreview/openreview-mcp/query"
)

// Defaults applied by New when the corresponding Config field is unset.
const (
	DefaultName    = "openreview-mcp"
	DefaultVersion = "1.0.0"
)

// ServerInfo identifies this server to MCP clients and in the health and
// capabilities payloads.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Config configures a Server. The zero value is usable: it serves the
// built-in dataset with a no-op logger under the default identity.
type Config struct {
	// ServerInfo identifies the server. Empty fields default to
	// DefaultName and DefaultVersion.
	ServerInfo ServerInfo

	// Repository is the catalog to serve. Defaults to the built-in
	// openreview-py dataset.
	Repository *catalog.Repository

	// Logger receives one structured entry per tool call. Defaults to a
	// no-op logger.
	Logger *zap.Logger
}

// Server wires the query engine to an MCP tool surface.
type Server struct {
	info      ServerInfo
	engine    *query.Engine
	logger    *zap.Logger
	mcp       *mcp.Server
	toolNames []string
}

// New builds a Server with every catalog tool registered.
func New(cfg Config) *Server {
	info := cfg.ServerInfo
	if info.Name == "" {
		info.Name = DefaultName
	}
	if info.Version == "" {
		info.Version = DefaultVersion
	}
	repo := cfg.Repository
	if repo == nil {
		repo = catalog.NewDefault()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		info:   info,
		engine: query.New(repo),
		logger: logger,
		mcp:    mcp.NewServer(&mcp.Implementation{Name: info.Name, Version: info.Version}, nil),
	}
	s.registerTools()
	return s
}

// MCP returns the underlying protocol server, for transports and tests
// that connect sessions directly.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// ToolNames returns the registered tool names in registration order.
func (s *Server) ToolNames() []string {
	out := make([]string, len(s.toolNames))
	copy(out, s.toolNames)
	return out
}

type listFunctionsInput struct {
	// ModuleFilter restricts the listing to one exact module path,
	// e.g. "openreview.api.OpenReviewClient".
	ModuleFilter string `json:"module_filter,omitempty"`
}

type listClassesInput struct {
	// IncludeMethods controls whether class method sequences are
	// returned. Defaults to true when omitted.
	IncludeMethods *bool `json:"include_methods,omitempty"`
}

type searchInput struct {
	Query string `json:"query"`
}

type functionDetailsInput struct {
	Name string `json:"name"`
}

type emptyInput struct{}

type listMetadata struct {
	ModuleFilter string `json:"module_filter,omitempty"`
	Source       string `json:"source"`
}

type searchMetadata struct {
	Query  string `json:"query"`
	Source string `json:"source"`
}

type functionsResult struct {
	Status    string             `json:"status"`
	Count     int                `json:"count"`
	Functions []catalog.Function `json:"functions"`
	Metadata  listMetadata       `json:"metadata"`
}

type classesResult struct {
	Status   string          `json:"status"`
	Count    int             `json:"count"`
	Classes  []catalog.Class `json:"classes"`
	Metadata listMetadata    `json:"metadata"`
}

type searchResult struct {
	Status   string             `json:"status"`
	Count    int                `json:"count"`
	Results  []catalog.Function `json:"results"`
	Metadata searchMetadata     `json:"metadata"`
}

type toolsResult struct {
	Status string             `json:"status"`
	Count  int                `json:"count"`
	Tools  []catalog.Function `json:"tools"`
}

type notFoundResult struct {
	Error string `json:"error"`
}

type capabilitiesResult struct {
	ServerInfo ServerInfo `json:"server_info"`
	Tools      []string   `json:"tools"`
	ToolCount  int        `json:"tool_count"`
}

type healthResult struct {
	Status  string `json:"status"`
	Server  string `json:"server"`
	Version string `json:"version"`
}

const (
	statusOK   = "ok"
	dataSource = "openreview-py"
)

func (s *Server) registerTools() {
	register(s, &mcp.Tool{
		Name:        "list_functions",
		Description: "List all available functions from the openreview-py library, optionally filtered by exact module path.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in listFunctionsInput) (*mcp.CallToolResult, any, error) {
		functions := s.engine.ListFunctions(in.ModuleFilter)
		s.logger.Info("list_functions",
			zap.String("module_filter", in.ModuleFilter),
			zap.Int("count", len(functions)))
		return nil, functionsResult{
			Status:    statusOK,
			Count:     len(functions),
			Functions: functions,
			Metadata:  listMetadata{ModuleFilter: in.ModuleFilter, Source: dataSource},
		}, nil
	})

	register(s, &mcp.Tool{
		Name:        "list_classes",
		Description: "List all available classes from the openreview-py library. Set include_methods=false to omit method detail.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in listClassesInput) (*mcp.CallToolResult, any, error) {
		includeMethods := in.IncludeMethods == nil || *in.IncludeMethods
		classes := s.engine.ListClasses(includeMethods)
		s.logger.Info("list_classes",
			zap.Bool("include_methods", includeMethods),
			zap.Int("count", len(classes)))
		return nil, classesResult{
			Status:   statusOK,
			Count:    len(classes),
			Classes:  classes,
			Metadata: listMetadata{Source: dataSource},
		}, nil
	})

	register(s, &mcp.Tool{
		Name:        "search",
		Description: "Search functions and utility tools by case-insensitive keyword in names or docstrings. Results are unranked.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, any, error) {
		results := s.engine.Search(in.Query)
		s.logger.Info("search",
			zap.String("query", in.Query),
			zap.Int("count", len(results)))
		return nil, searchResult{
			Status:   statusOK,
			Count:    len(results),
			Results:  results,
			Metadata: searchMetadata{Query: in.Query, Source: dataSource},
		}, nil
	})

	register(s, &mcp.Tool{
		Name:        "function_details",
		Description: "Get detailed information about one function by exact name, including signature and docstring.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in functionDetailsInput) (*mcp.CallToolResult, any, error) {
		detail, err := s.engine.FunctionDetails(in.Name)
		if err != nil {
			// A miss is an expected outcome; report it in-band so the
			// client can branch on content instead of a protocol error.
			if errors.Is(err, query.ErrFunctionNotFound) {
				s.logger.Info("function_details",
					zap.String("name", in.Name),
					zap.Bool("found", false))
				return nil, notFoundResult{
					Error: fmt.Sprintf("Function %q not found", in.Name),
				}, nil
			}
			s.logger.Warn("function_details rejected", zap.Error(err))
			return nil, nil, err
		}
		s.logger.Info("function_details",
			zap.String("name", in.Name),
			zap.Bool("found", true))
		return nil, detail, nil
	})

	register(s, &mcp.Tool{
		Name:        "get_tools",
		Description: "List the standalone utility functions from the openreview.tools module with per-parameter documentation.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		overview := s.engine.Overview()
		s.logger.Info("get_tools", zap.Int("count", len(overview.Tools)))
		return nil, toolsResult{
			Status: statusOK,
			Count:  len(overview.Tools),
			Tools:  overview.Tools,
		}, nil
	})

	register(s, &mcp.Tool{
		Name:        "overview",
		Description: "Get a comprehensive overview of the openreview-py library: functions, classes, tools, modules, statistics, and the API 1 vs API 2 guide.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		overview := s.engine.Overview()
		s.logger.Info("overview",
			zap.Int("functions", overview.Statistics.TotalFunctions),
			zap.Int("classes", overview.Statistics.TotalClasses))
		return nil, overview, nil
	})

	register(s, &mcp.Tool{
		Name:        "capabilities",
		Description: "Report the server identity and the list of registered tool names.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		names := s.ToolNames()
		return nil, capabilitiesResult{
			ServerInfo: s.info,
			Tools:      names,
			ToolCount:  len(names),
		}, nil
	})

	register(s, &mcp.Tool{
		Name:        "health",
		Description: "Liveness probe: reports a fixed healthy status with the server identifier and version.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		return nil, healthResult{
			Status:  "healthy",
			Server:  s.info.Name,
			Version: s.info.Version,
		}, nil
	})
}

func register[In any](s *Server, tool *mcp.Tool, handler mcp.ToolHandlerFor[In, any]) {
	mcp.AddTool(s.mcp, tool, handler)
	s.toolNames = append(s.toolNames, tool.Name)
}
