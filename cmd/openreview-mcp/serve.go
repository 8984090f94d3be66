package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openreview/openreview-mcp/server"
)

func init() {
	serveCmd.Flags().String("transport", "http", "transport to serve on: http or stdio")
	serveCmd.Flags().String("host", "localhost", "host to bind (http transport)")
	serveCmd.Flags().Int("port", 4000, "port to bind (http transport)")
	_ = viper.BindPFlag("transport", serveCmd.Flags().Lookup("transport"))
	_ = viper.BindPFlag("host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog MCP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		srv := server.New(server.Config{
			ServerInfo: server.ServerInfo{Name: "openreview-mcp", Version: Version},
			Logger:     logger,
		})

		transport := viper.GetString("transport")
		if transport != "stdio" {
			printBanner(srv)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		switch transport {
		case "stdio":
			logger.Info("serving on stdio")
			return srv.Run(ctx, &mcp.StdioTransport{})
		case "http":
			addr := fmt.Sprintf("%s:%d", viper.GetString("host"), viper.GetInt("port"))
			return srv.ServeHTTP(ctx, addr)
		default:
			return fmt.Errorf("unknown transport %q (want http or stdio)", transport)
		}
	},
}

func printBanner(srv *server.Server) {
	color.New(color.FgCyan, color.Bold).Println("Starting OpenReview Python Library MCP Server...")
	fmt.Println("Available tools:")
	descriptions := map[string]string{
		"list_functions":   "List all available functions",
		"list_classes":     "List all available classes",
		"search":           "Search functions by keyword",
		"function_details": "Get detailed function information",
		"get_tools":        "List openreview.tools utility functions",
		"overview":         "Get library overview",
		"capabilities":     "List server capabilities",
		"health":           "Liveness probe",
	}
	for _, name := range srv.ToolNames() {
		fmt.Printf("- %s: %s\n", color.GreenString(name), descriptions[name])
	}
	fmt.Println()
}
