package repositories

import (
	"context"
	"io"

	"portfolio.backend/internal/domain/entities"
)

// MediaStore persists uploaded files under media-relative keys such as "certificates/yip.jpg"
type MediaStore interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Exists(ctx context.Context, key string) (bool, error)
	// URL returns the public address of key
	URL(key string) string
}

// HomepageCache caches the composed homepage view. A miss is (nil, false, nil).
// Set only stores when the generation read before loading is still current,
// so a view loaded before an Invalidate is dropped instead of cached.
type HomepageCache interface {
	Get(ctx context.Context) (*entities.HomepageView, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, view *entities.HomepageView, generation int64) error
	Invalidate(ctx context.Context) error
}
