package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"newsillustrator/internal/app"
	"newsillustrator/internal/config"
	"newsillustrator/internal/handler"
	"newsillustrator/internal/logging"
	"newsillustrator/internal/mcpserver"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logging.Init(os.Stdout, cfg.LogLevel)

	mode, err := cfg.Mode()
	if err != nil {
		log.Fatalf("error reading pipeline mode: %v", err)
	}

	p, cleanup, err := app.NewPipeline(context.Background(), cfg)
	if err != nil {
		log.Fatalf("error building pipeline: %v", err)
	}
	defer cleanup()

	generateHandler := handler.NewGenerateHandler(p, mode)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), handler.RequestLog())

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
	}))

	r.GET("/health", generateHandler.GetHealth)
	r.POST("/generate", generateHandler.Generate)

	if cfg.MCPEnabled {
		mcpSrv := mcpserver.New(p, mode, version)
		r.Any("/mcp", gin.WrapH(server.NewStreamableHTTPServer(mcpSrv.Server())))
		slog.Info("MCP endpoint enabled", "path", "/mcp")
	}

	slog.Info("starting server", "addr", cfg.Addr(), "mode", mode)

	err = r.Run(cfg.Addr())
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
