package api

import (
	"net/http"

	"github.com/jonesrussell/blogwatch/internal/config"
	"github.com/jonesrussell/blogwatch/internal/logger"
)

// NewServer builds the http.Server wrapping the configured router, with
// the server timeouts from configuration applied.
func NewServer(
	log logger.Interface,
	runner Runner,
	sender Sender,
	cfg config.Interface,
) *http.Server {
	serverCfg := cfg.GetServerConfig()

	return &http.Server{
		Addr:         serverCfg.Address,
		Handler:      SetupRouter(log, runner, sender, cfg),
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		IdleTimeout:  serverCfg.IdleTimeout,
	}
}
