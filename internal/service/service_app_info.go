package service

import (
	"context"

	"github.com/MKhiriev/pass-the-pages/internal/config"
	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/models"
)

const unknownBuildField = "N/A"

type appInfoService struct {
	build models.BuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns the service behind GET /version and
// GET /version/build. An empty configured version is a startup error; a
// missing build date or commit is reported as "N/A".
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	build := models.BuildInfo{
		Version: cfg.Version,
		Date:    orUnknown(cfg.BuildDate),
		Commit:  orUnknown(cfg.BuildCommit),
	}
	logger.Info().
		Str("version", build.Version).
		Str("build_date", build.Date).
		Str("build_commit", build.Commit).
		Msg("serving build info")

	return &appInfoService{
		build:  build,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.build.Version
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.build
}

func orUnknown(value string) string {
	if value == "" {
		return unknownBuildField
	}
	return value
}
