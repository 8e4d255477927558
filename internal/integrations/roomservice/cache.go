package roomservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/resortly/booking-service/internal/domain"
)

// RoomProvider is the fetch surface the cache decorates.
type RoomProvider interface {
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
}

// CachedClient is a read-through Redis cache in front of the room
// service. Cache failures degrade to a direct fetch and never fail the
// request; only ErrRoomNotFound and transport errors propagate.
type CachedClient struct {
	provider RoomProvider
	rdb      *redis.Client
	ttl      time.Duration
	log      Logger
}

// NewCachedClient wraps provider with a Redis cache.
func NewCachedClient(provider RoomProvider, rdb *redis.Client, ttl time.Duration, log Logger) *CachedClient {
	return &CachedClient{
		provider: provider,
		rdb:      rdb,
		ttl:      ttl,
		log:      log,
	}
}

func roomKey(roomID int64) string {
	return fmt.Sprintf("room:%d", roomID)
}

// GetRoom returns the cached room record, falling back to the room
// service on a miss and caching the result with the configured TTL.
// Negative results are not cached: a room created moments ago must be
// bookable immediately.
func (c *CachedClient) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	key := roomKey(roomID)

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var room domain.Room
		if jsonErr := json.Unmarshal([]byte(cached), &room); jsonErr == nil {
			return &room, nil
		}
		c.log.Warn("roomservice cache: corrupt entry for %s, refetching", key)
	} else if err != redis.Nil {
		c.log.Warn("roomservice cache: redis get failed for %s: %v", key, err)
	}

	room, err := c.provider.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(room); jsonErr == nil {
		if setErr := c.rdb.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.log.Warn("roomservice cache: redis set failed for %s: %v", key, setErr)
		}
	}

	return room, nil
}
