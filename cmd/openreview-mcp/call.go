package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	callURL     string
	callArgs    string
	callTimeout time.Duration
)

func init() {
	callCmd.Flags().StringVar(&callURL, "url", "", "server URL (defaults to http://<host>:<port>)")
	callCmd.Flags().StringVar(&callArgs, "args", "{}", "tool arguments as a JSON object")
	callCmd.Flags().DurationVar(&callTimeout, "timeout", 30*time.Second, "call timeout")
}

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Call one tool on a running catalog server",
	Long: `Connects to a running server as an MCP client, invokes a single tool,
and prints the structured result as JSON. Useful for smoke-testing a
deployment without an agent in the loop.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var toolArgs map[string]any
		if err := json.Unmarshal([]byte(callArgs), &toolArgs); err != nil {
			return fmt.Errorf("invalid --args: %w", err)
		}

		endpoint := callURL
		if endpoint == "" {
			endpoint = fmt.Sprintf("http://%s:%d", viper.GetString("host"), viper.GetInt("port"))
		}
		transport, err := clientTransport(endpoint)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
		defer cancel()

		client := mcp.NewClient(&mcp.Implementation{Name: "openreview-mcp-cli", Version: Version}, nil)
		session, err := client.Connect(ctx, transport, nil)
		if err != nil {
			return fmt.Errorf("connect to %s: %w", endpoint, err)
		}
		defer func() { _ = session.Close() }()

		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      args[0],
			Arguments: toolArgs,
		})
		if err != nil {
			return fmt.Errorf("call %s: %w", args[0], err)
		}
		if result.IsError {
			return fmt.Errorf("tool %s failed: %s", args[0], toolResultError(result))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(toolResultValue(result))
	},
}

func clientTransport(endpoint string) (mcp.Transport, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https":
		return &mcp.StreamableClientTransport{Endpoint: endpoint}, nil
	case "stdio":
		return &mcp.StdioTransport{}, nil
	default:
		return nil, fmt.Errorf("unsupported server URL scheme %q", parsed.Scheme)
	}
}

func toolResultValue(result *mcp.CallToolResult) any {
	if result == nil {
		return nil
	}
	if result.StructuredContent != nil {
		return result.StructuredContent
	}
	if len(result.Content) == 1 {
		if text, ok := result.Content[0].(*mcp.TextContent); ok {
			return text.Text
		}
	}
	return result.Content
}

func toolResultError(result *mcp.CallToolResult) string {
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok && text.Text != "" {
			return text.Text
		}
	}
	if result.StructuredContent != nil {
		return fmt.Sprintf("%v", result.StructuredContent)
	}
	return "tool execution failed"
}
