package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/parthbanwari/Mediately/internal/config"
	"github.com/parthbanwari/Mediately/internal/core"
	"github.com/parthbanwari/Mediately/internal/store"
)

// NewServer builds the HTTP server: health probe, message history API, the
// WebSocket relay endpoint, and optionally the built SPA.
func NewServer(hub *core.Hub, st store.MessageStore, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.AllowedOrigin))

	router.GET("/health", healthHandler)

	messageHandlers := NewMessageHandlers(st, logger)
	router.GET("/messages/:caseId", messageHandlers.ListMessages)

	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg, logger)))

	if cfg.StaticDir != "" {
		registerStatic(router, cfg.StaticDir)
	}

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
