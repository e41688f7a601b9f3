package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/homekeep/api/internal/config"
	"github.com/homekeep/api/internal/logger"
	"github.com/homekeep/api/internal/repository"
)

const (
	nameKeyPrefix = "housename:"
	nameTTL       = 1 * time.Hour
)

// NewClient builds a Redis client from configuration. Returns nil when no
// address is configured, which disables caching entirely.
func NewClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// HouseNames resolves house display names by id through a read-through
// cache. Child documents store a houseName copy, but list and detail reads
// prefer the live name resolved here; the denormalized copy is only a
// fallback for orphaned references. Cache failures are never fatal: every
// path degrades to a direct store lookup.
type HouseNames struct {
	client *redis.Client
	houses repository.HouseRepository
	log    *logger.Logger
}

// NewHouseNames creates the resolver. client may be nil.
func NewHouseNames(client *redis.Client, houses repository.HouseRepository, log *logger.Logger) *HouseNames {
	return &HouseNames{client: client, houses: houses, log: log}
}

// Enabled reports whether a Redis backend is configured.
func (n *HouseNames) Enabled() bool {
	return n.client != nil
}

// Ping checks cache reachability. Reports nil when caching is disabled.
func (n *HouseNames) Ping(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	return n.client.Ping(ctx).Err()
}

// Resolve returns the current name of the house and whether the house
// exists. A missing house is not an error; callers fall back to whatever
// name copy they hold.
func (n *HouseNames) Resolve(ctx context.Context, houseID string) (string, bool, error) {
	if houseID == "" {
		return "", false, nil
	}

	if n.client != nil {
		name, err := n.client.Get(ctx, nameKeyPrefix+houseID).Result()
		if err == nil {
			return name, true, nil
		}
		if err != redis.Nil {
			n.log.Warn("House name cache read failed", map[string]interface{}{
				"house_id": houseID,
				"error":    err.Error(),
			})
		}
	}

	house, err := n.houses.GetByID(ctx, houseID)
	if err != nil {
		return "", false, err
	}
	if house == nil {
		return "", false, nil
	}

	n.store(ctx, houseID, house.Name)
	return house.Name, true, nil
}

// Refresh replaces the cached name after a rename.
func (n *HouseNames) Refresh(ctx context.Context, houseID, name string) {
	n.store(ctx, houseID, name)
}

// Invalidate drops the cached name, e.g. after a house deletion.
func (n *HouseNames) Invalidate(ctx context.Context, houseID string) {
	if n.client == nil {
		return
	}
	if err := n.client.Del(ctx, nameKeyPrefix+houseID).Err(); err != nil {
		n.log.Warn("House name cache invalidation failed", map[string]interface{}{
			"house_id": houseID,
			"error":    err.Error(),
		})
	}
}

// store writes through to the cache, best effort.
func (n *HouseNames) store(ctx context.Context, houseID, name string) {
	if n.client == nil {
		return
	}
	if err := n.client.Set(ctx, nameKeyPrefix+houseID, name, nameTTL).Err(); err != nil {
		n.log.Warn("House name cache write failed", map[string]interface{}{
			"house_id": houseID,
			"error":    err.Error(),
		})
	}
}
