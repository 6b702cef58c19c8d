package cache

import (
	"aeron/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RecoveryCache holds the most recent generated option set per disruption so
// repeat requests skip regeneration.
type RecoveryCache interface {
	Get(ctx context.Context, disruptionID string) (*CachedGeneration, error)
	Set(ctx context.Context, disruptionID string, generation *CachedGeneration) error
	Invalidate(ctx context.Context, disruptionID string) error
}

// CachedGeneration is the cached payload for one disruption.
type CachedGeneration struct {
	Options  []model.RecoveryOption   `json:"options"`
	Steps    []model.RecoveryStep     `json:"steps"`
	Metadata model.GenerationMetadata `json:"metadata"`
}

type recoveryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRecoveryCache creates a new recovery cache.
func NewRecoveryCache(client *redis.Client, ttl time.Duration) RecoveryCache {
	return &recoveryCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *recoveryCache) key(disruptionID string) string {
	return fmt.Sprintf("disruption:%s:recovery", disruptionID)
}

func (c *recoveryCache) Get(ctx context.Context, disruptionID string) (*CachedGeneration, error) {
	data, err := c.client.Get(ctx, c.key(disruptionID)).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, err
	}

	var cached CachedGeneration
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

func (c *recoveryCache) Set(ctx context.Context, disruptionID string, generation *CachedGeneration) error {
	data, err := json.Marshal(generation)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(disruptionID), data, c.ttl).Err()
}

func (c *recoveryCache) Invalidate(ctx context.Context, disruptionID string) error {
	return c.client.Del(ctx, c.key(disruptionID)).Err()
}
