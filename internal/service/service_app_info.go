package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
)

// appInfoService answers GET /api/version so a board client can tell which
// build of the reveal server it is talking to.
type appInfoService struct {
	version string
}

// NewAppInfoService refuses to start a server without a build version.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Msg("reveal server build")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
