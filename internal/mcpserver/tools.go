package mcpserver

import (
	"context"
	"errors"

	"newsillustrator/internal/pipeline"
	"newsillustrator/pkg/llm"

	"github.com/mark3labs/mcp-go/mcp"
)

const generateToolName = "generate_news_image"

func (s *MCPServer) registerTools() {
	generateTool := mcp.NewTool(generateToolName,
		mcp.WithDescription("Write a headline or summary with sentiment for a news article and save an illustrative image for it"),
		mcp.WithString("news_article",
			mcp.Required(),
			mcp.Description("Full text of the news article"),
		),
		mcp.WithString("mode",
			mcp.Description("headline or summary"),
			mcp.Enum(string(llm.ModeHeadline), string(llm.ModeSummary)),
		),
	)
	s.mcpServer.AddTool(generateTool, s.handleGenerate)
}

func (s *MCPServer) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	article := request.GetString("news_article", "")
	if article == "" {
		return mcp.NewToolResultError("news_article parameter required"), nil
	}

	mode, err := llm.ParseMode(request.GetString("mode", ""), s.defaultMode)
	if err != nil {
		return mcp.NewToolResultError("mode must be 'headline' or 'summary'"), nil
	}

	res, err := s.generator.Run(ctx, article, mode)
	if err != nil {
		if errors.Is(err, pipeline.ErrInvalidInput) {
			return mcp.NewToolResultError("news_article parameter required"), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatResult(res)), nil
}
