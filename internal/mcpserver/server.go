package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"newsillustrator/internal/pipeline"
	"newsillustrator/pkg/llm"

	"github.com/mark3labs/mcp-go/server"
)

type Generator interface {
	Run(ctx context.Context, article string, mode llm.Mode) (*pipeline.Result, error)
}

// MCPServer exposes the illustration pipeline as an MCP tool.
type MCPServer struct {
	generator   Generator
	defaultMode llm.Mode
	mcpServer   *server.MCPServer
}

func New(generator Generator, defaultMode llm.Mode, version string) *MCPServer {
	s := &MCPServer{
		generator:   generator,
		defaultMode: defaultMode,
	}

	s.mcpServer = server.NewMCPServer(
		"newsillustrator",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.registerTools()

	return s
}

func (s *MCPServer) Server() *server.MCPServer {
	return s.mcpServer
}

func formatResult(res *pipeline.Result) string {
	label, sentimentLabel := "Headline", "Sentiment analysis"
	if res.Mode == llm.ModeSummary {
		label, sentimentLabel = "Summary", "Sentiment"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s\n", label, res.Text))
	sb.WriteString(fmt.Sprintf("%s: %s\n", sentimentLabel, res.Sentiment))
	sb.WriteString(fmt.Sprintf("Image path: %s\n", res.ImagePath))
	return sb.String()
}
