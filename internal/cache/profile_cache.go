package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/satya-supercluster/brand-voice-service/internal/domain"
)

// ProfileCache cachea vistas de perfil por customerId. Las entradas son
// advisory: un fallo de lectura se trata como miss y la invalidacion es
// best-effort.
type ProfileCache interface {
	Get(ctx context.Context, customerID string) (domain.ProfileView, bool)
	Set(ctx context.Context, customerID string, view domain.ProfileView)
	Invalidate(ctx context.Context, customerID string)
}

type redisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisProfileCache implementa ProfileCache con valores JSON y TTL fijo.
type RedisProfileCache struct {
	client redisCmdable
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

const cacheOpTimeout = 500 * time.Millisecond

func NewRedisProfileCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisProfileCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisProfileCache{
		client: client,
		ttl:    ttl,
		prefix: "brandvoice:profile:",
		logger: logger,
	}
}

func (c *RedisProfileCache) Get(ctx context.Context, customerID string) (domain.ProfileView, bool) {
	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	raw, err := c.client.Get(opCtx, c.prefix+customerID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) && c.logger != nil {
			c.logger.Warn("profile cache read failed", zap.Error(err), zap.String("customer_id", customerID))
		}
		return domain.ProfileView{}, false
	}

	var view domain.ProfileView
	if err := json.Unmarshal(raw, &view); err != nil {
		if c.logger != nil {
			c.logger.Warn("profile cache entry corrupted", zap.Error(err), zap.String("customer_id", customerID))
		}
		return domain.ProfileView{}, false
	}
	return view, true
}

func (c *RedisProfileCache) Set(ctx context.Context, customerID string, view domain.ProfileView) {
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := c.client.Set(opCtx, c.prefix+customerID, raw, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("profile cache write failed", zap.Error(err), zap.String("customer_id", customerID))
	}
}

func (c *RedisProfileCache) Invalidate(ctx context.Context, customerID string) {
	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := c.client.Del(opCtx, c.prefix+customerID).Err(); err != nil && c.logger != nil {
		c.logger.Warn("profile cache invalidation failed", zap.Error(err), zap.String("customer_id", customerID))
	}
}

type noopProfileCache struct{}

// NewNoopProfileCache devuelve un cache deshabilitado: todo lookup es miss.
func NewNoopProfileCache() ProfileCache {
	return noopProfileCache{}
}

func (noopProfileCache) Get(context.Context, string) (domain.ProfileView, bool) {
	return domain.ProfileView{}, false
}

func (noopProfileCache) Set(context.Context, string, domain.ProfileView) {}

func (noopProfileCache) Invalidate(context.Context, string) {}
