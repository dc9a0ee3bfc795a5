package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Bavikaran/Authentication-System-Backend/internal/config"
	httpx "github.com/Bavikaran/Authentication-System-Backend/internal/http"
	"github.com/Bavikaran/Authentication-System-Backend/internal/http/handlers"
	"github.com/Bavikaran/Authentication-System-Backend/internal/http/middleware"
)

// Run wires the container into the HTTP surface and serves until the
// listener fails.
func Run(cfg *config.Config, logger zerolog.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	cookieSecure := gin.Mode() == gin.ReleaseMode
	authH := handlers.NewAuthHandlers(c.AuthSvc, logger, cookieSecure)
	authMW := middleware.NewAuthMW(c.TokenSvc)

	r := httpx.BuildRouter(authH, authMW, cfg.ClientURL)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, r)
}
