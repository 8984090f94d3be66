package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "openreview-mcp",
	Short: "MCP server exposing the openreview-py library catalog",
	Long: `openreview-mcp serves a static catalog of the openreview-py client
library (classes, methods, signatures, docstrings) over the Model Context
Protocol, so agents can discover which function does what without holding
the library source in context.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// MCP_HOST and MCP_PORT override the defaults, matching the flags.
	viper.SetEnvPrefix("MCP")
	viper.AutomaticEnv()
	viper.SetDefault("debug", false)
	viper.SetDefault("host", "localhost")
	viper.SetDefault("port", 4000)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(callCmd)
}

// newLogger builds the process logger: human-readable in debug mode, JSON
// production encoding otherwise. Output goes to stderr so stdio transport
// framing on stdout stays clean.
func newLogger() (*zap.Logger, error) {
	if viper.GetBool("debug") {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
