package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ecommerce-api/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachedProfileStore decorates a ProfileStore with a Redis read cache.
// Cache failures are logged and degrade to the underlying store, they
// never fail the operation.
type CachedProfileStore struct {
	inner  ProfileStore
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewCachedProfileStore(inner ProfileStore, client *redis.Client, ttl time.Duration, log *zap.Logger) *CachedProfileStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &CachedProfileStore{
		inner:  inner,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *CachedProfileStore) key(uid string) string {
	return fmt.Sprintf("profile:uid:%s", uid)
}

func (c *CachedProfileStore) Get(ctx context.Context, uid string) (*entity.UserProfile, error) {
	raw, err := c.client.Get(ctx, c.key(uid)).Bytes()
	if err == nil {
		var profile entity.UserProfile
		if err := json.Unmarshal(raw, &profile); err == nil {
			return &profile, nil
		}
		// Corrupt entry, fall through to the store.
		c.log.Warn("Dropping corrupt profile cache entry", zap.String("uid", uid))
		c.invalidate(ctx, uid)
	} else if err != redis.Nil {
		c.log.Warn("Profile cache read failed", zap.Error(err), zap.String("uid", uid))
	}

	profile, err := c.inner.Get(ctx, uid)
	if err != nil || profile == nil {
		return profile, err
	}

	c.set(ctx, profile)
	return profile, nil
}

func (c *CachedProfileStore) Put(ctx context.Context, profile *entity.UserProfile) error {
	if err := c.inner.Put(ctx, profile); err != nil {
		return err
	}

	c.set(ctx, profile)
	return nil
}

func (c *CachedProfileStore) Patch(ctx context.Context, uid string, patch entity.ProfilePatch, updatedAt time.Time) error {
	if err := c.inner.Patch(ctx, uid, patch, updatedAt); err != nil {
		return err
	}

	// The merged document lives in the store, drop the stale copy.
	c.invalidate(ctx, uid)
	return nil
}

func (c *CachedProfileStore) set(ctx context.Context, profile *entity.UserProfile) {
	raw, err := json.Marshal(profile)
	if err != nil {
		c.log.Warn("Failed to marshal profile for cache", zap.Error(err), zap.String("uid", profile.UID))
		return
	}
	if err := c.client.Set(ctx, c.key(profile.UID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Profile cache write failed", zap.Error(err), zap.String("uid", profile.UID))
	}
}

func (c *CachedProfileStore) invalidate(ctx context.Context, uid string) {
	if err := c.client.Del(ctx, c.key(uid)).Err(); err != nil {
		c.log.Warn("Profile cache invalidation failed", zap.Error(err), zap.String("uid", uid))
	}
}
