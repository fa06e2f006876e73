package http

import (
	"time"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/service"
	"github.com/MKhiriev/keeper-reveal/internal/utils"
)

type Handler struct {
	services *service.Services
	hub      *Hub
	signer   *utils.Signer
	ids      *utils.UUIDGenerator

	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, hub *Hub, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		hub:            hub,
		signer:         utils.NewSigner(cfg.App.TokenSignKey),
		ids:            utils.NewUUIDGenerator(),
		allowedOrigins: cfg.Server.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
