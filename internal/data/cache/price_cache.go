package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cinema-ebooking/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const priceConfigKey = "price_config:current"

// PriceCache is a read-through copy of the singleton price configuration.
// A miss is reported as nil, nil.
type PriceCache interface {
	Get(ctx context.Context) (*entity.PriceConfig, error)
	Set(ctx context.Context, cfg *entity.PriceConfig) error
	Invalidate(ctx context.Context) error
}

type redisPriceCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisPriceCache(client *redis.Client, ttl time.Duration, log *zap.Logger) PriceCache {
	return &redisPriceCache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("cache", "price_config")),
	}
}

func (c *redisPriceCache) Get(ctx context.Context) (*entity.PriceConfig, error) {
	data, err := c.client.Get(ctx, priceConfigKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached price config: %w", err)
	}

	var cfg entity.PriceConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		// a corrupt entry is treated as a miss and dropped
		c.log.Warn("Discarding unreadable cache entry", zap.Error(err))
		_ = c.Invalidate(ctx)
		return nil, nil
	}
	return &cfg, nil
}

func (c *redisPriceCache) Set(ctx context.Context, cfg *entity.PriceConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal price config: %w", err)
	}
	if err := c.client.Set(ctx, priceConfigKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache price config: %w", err)
	}
	return nil
}

func (c *redisPriceCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, priceConfigKey).Err(); err != nil {
		return fmt.Errorf("invalidate price config: %w", err)
	}
	return nil
}

type noopPriceCache struct{}

// NewNoopPriceCache is used when Redis is disabled; every Get misses.
func NewNoopPriceCache() PriceCache { return noopPriceCache{} }

func (noopPriceCache) Get(context.Context) (*entity.PriceConfig, error) { return nil, nil }
func (noopPriceCache) Set(context.Context, *entity.PriceConfig) error   { return nil }
func (noopPriceCache) Invalidate(context.Context) error                 { return nil }
