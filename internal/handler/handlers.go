package handler

import (
	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/handler/http"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/service"
)

// Handlers groups the transport handlers of the server. Hub is shared with
// the event relay, which pushes store changes through it.
type Handlers struct {
	HTTP *http.Handler
	Hub  *http.Hub
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	hub := http.NewHub(cfg.Server.AllowedOrigins, logger)

	return &Handlers{
		HTTP: http.NewHandler(services, hub, cfg, logger),
		Hub:  hub,
	}, nil
}
