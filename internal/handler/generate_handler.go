package handler

import (
	"context"
	"errors"
	"net/http"

	"newsillustrator/internal/logging"
	"newsillustrator/internal/pipeline"
	"newsillustrator/pkg/llm"

	"github.com/gin-gonic/gin"
)

type Generator interface {
	Run(ctx context.Context, article string, mode llm.Mode) (*pipeline.Result, error)
}

type GenerateHandler struct {
	generator   Generator
	defaultMode llm.Mode
}

func NewGenerateHandler(generator Generator, defaultMode llm.Mode) *GenerateHandler {
	return &GenerateHandler{generator: generator, defaultMode: defaultMode}
}

func (h *GenerateHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Service is running"})
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	logger := logging.FromContext(ctx)

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid generate request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidInputMessage})
		return
	}

	mode, err := llm.ParseMode(req.Mode, h.defaultMode)
	if err != nil {
		logger.Warn("invalid generate mode", "mode", req.Mode)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidModeMessage})
		return
	}

	res, err := h.generator.Run(ctx, req.NewsArticle, mode)
	if err != nil {
		var stageErr *pipeline.StageError
		switch {
		case errors.Is(err, pipeline.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidInputMessage})
		case errors.As(err, &stageErr):
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: stageErr.Error()})
		default:
			logger.Error("error running pipeline", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	if res.Mode == llm.ModeSummary {
		c.JSON(http.StatusOK, SummaryResponse{
			Summary:   res.Text,
			Sentiment: res.Sentiment,
			ImagePath: res.ImagePath,
		})
		return
	}

	c.JSON(http.StatusOK, HeadlineResponse{
		Headline:          res.Text,
		SentimentAnalysis: res.Sentiment,
		ImagePath:         res.ImagePath,
	})
}
