package provider

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	profileByUserKeyFormat = "provider:profile:user:%d"
	userByProfileKeyFormat = "provider:user:profile:%d"

	DefaultTTL = 10 * time.Minute
)

// Cache read-through кэш соответствий пользователь <-> профиль исполнителя в Redis
// Ошибки Redis не прерывают запрос: значение берётся из следующего слоя
type Cache struct {
	client redis.Cmdable
	next   Directory
	ttl    time.Duration
	logger Logger
}

// NewCache создает кэш поверх next
func NewCache(client redis.Cmdable, next Directory, ttl time.Duration, logger Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: logger,
	}
}

// GetProfileIDByUserID возвращает ID профиля исполнителя для пользователя
func (c *Cache) GetProfileIDByUserID(ctx context.Context, userID int64) (int64, error) {
	return c.get(ctx, fmt.Sprintf(profileByUserKeyFormat, userID), func() (int64, error) {
		return c.next.GetProfileIDByUserID(ctx, userID)
	})
}

// GetUserIDByProfileID возвращает ID пользователя-владельца профиля
func (c *Cache) GetUserIDByProfileID(ctx context.Context, profileID int64) (int64, error) {
	return c.get(ctx, fmt.Sprintf(userByProfileKeyFormat, profileID), func() (int64, error) {
		return c.next.GetUserIDByProfileID(ctx, profileID)
	})
}

func (c *Cache) get(ctx context.Context, key string, load func() (int64, error)) (int64, error) {
	raw, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		id, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr == nil {
			return id, nil
		}
		c.logger.Warn("Cache - corrupted value for key %s: %v", key, parseErr)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("Cache - redis get %s failed: %v", key, err)
	}

	// Ошибки (в том числе "не найдено") не кэшируются
	id, err := load()
	if err != nil {
		return 0, err
	}

	if err := c.client.Set(ctx, key, strconv.FormatInt(id, 10), c.ttl).Err(); err != nil {
		c.logger.Warn("Cache - redis set %s failed: %v", key, err)
	}

	return id, nil
}
