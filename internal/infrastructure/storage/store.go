package storage

import (
	"context"
	"fmt"
	"strings"

	"portfolio.backend/internal/config"
	domainRepos "portfolio.backend/internal/domain/repositories"
)

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// New returns the media store selected by cfg.Backend
func New(ctx context.Context, cfg config.MediaConfig) (domainRepos.MediaStore, error) {
	switch strings.ToLower(cfg.Backend) {
	case BackendLocal, "":
		return NewLocalStore(cfg.Root, cfg.URL), nil
	case BackendS3:
		return NewS3Store(ctx, cfg.S3, cfg.URL)
	default:
		return nil, fmt.Errorf("unsupported media backend %q", cfg.Backend)
	}
}
