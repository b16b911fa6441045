package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"portfolio.backend/internal/domain/entities"
)

const (
	HomepageKey   = "homepage:view"
	GenerationKey = "homepage:generation"
)

var errStaleGeneration = errors.New("homepage generation moved")

// HomepageCache stores the composed homepage as JSON in Redis.
// A nil client turns every call into a no-op miss.
type HomepageCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewHomepageCache(client *goredis.Client, ttl time.Duration) *HomepageCache {
	return &HomepageCache{client: client, ttl: ttl}
}

func (c *HomepageCache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

func (c *HomepageCache) Get(ctx context.Context) (*entities.HomepageView, bool, error) {
	if !c.enabled() {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, HomepageKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var view entities.HomepageView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, false, err
	}
	return &view, true, nil
}

// Generation returns the invalidation counter. A missing counter is generation 0.
func (c *HomepageCache) Generation(ctx context.Context) (int64, error) {
	if !c.enabled() {
		return 0, nil
	}
	gen, err := c.client.Get(ctx, GenerationKey).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set stores the view unless an Invalidate has bumped the generation since it was read.
// A stale view is dropped silently.
func (c *HomepageCache) Set(ctx context.Context, view *entities.HomepageView, generation int64) error {
	if !c.enabled() || view == nil {
		return nil
	}
	raw, err := json.Marshal(view)
	if err != nil {
		return err
	}

	err = c.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, GenerationKey).Int64()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, HomepageKey, raw, c.ttl)
			return nil
		})
		return err
	}, GenerationKey)
	if errors.Is(err, errStaleGeneration) || errors.Is(err, goredis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *HomepageCache) Invalidate(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey)
		pipe.Del(ctx, HomepageKey)
		return nil
	})
	return err
}
