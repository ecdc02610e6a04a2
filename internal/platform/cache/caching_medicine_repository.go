// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"mediscan_backend/internal/feature/medicines/domain/entity"
	"mediscan_backend/internal/feature/medicines/usecase"
)

// CachingMedicineRepository decorates a MedicineRepository with Redis caching
// of pillLabel lookups. It is a pure memoization: misses are never cached and
// entries never expire within a deployment (ttl 0). The backing table is
// read-mostly reference data, so the only invalidation happens on ReplaceAll.
type CachingMedicineRepository struct {
	inner     usecase.MedicineRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.MedicineRepository = (*CachingMedicineRepository)(nil)

// NewCachingMedicineRepository decorates a MedicineRepository with Redis caching.
// A ttl of 0 means entries never expire. If namespace is empty, it uses "medicines".
func NewCachingMedicineRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MedicineRepository, namespace string) *CachingMedicineRepository {
	if ttl < 0 {
		ttl = 0
	}
	if namespace == "" {
		namespace = "medicines"
	}
	return &CachingMedicineRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByPillLabel retrieves a record, checking cache first then falling back
// to the database. Absent records are returned as (nil, nil) and not cached.
func (c *CachingMedicineRepository) FindByPillLabel(ctx context.Context, pillLabel string) (*entity.Medicine, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByPillLabel(ctx, pillLabel)
	}

	key := c.cacheKey(pillLabel)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Medicine
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByPillLabel(ctx, pillLabel)
	if err != nil {
		return nil, err
	}
	if out == nil {
		// Misses are never cached
		return nil, nil
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID delegates to the inner repository. Only the natural-key lookup is
// on the per-request hot path, so id lookups are not cached.
func (c *CachingMedicineRepository) FindByID(ctx context.Context, id uint) (*entity.Medicine, error) {
	return c.inner.FindByID(ctx, id)
}

// ListAll delegates to the inner repository.
func (c *CachingMedicineRepository) ListAll(ctx context.Context) ([]entity.Medicine, error) {
	return c.inner.ListAll(ctx)
}

// ReplaceAll replaces the reference table and invalidates every cached lookup.
func (c *CachingMedicineRepository) ReplaceAll(ctx context.Context, medicines []entity.Medicine) error {
	if err := c.inner.ReplaceAll(ctx, medicines); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: don't fail the import if cache deletion fails
	_ = c.deleteByPattern(ctx, c.namespace+":*")
	return nil
}

// cacheKey generates a cache key for a pillLabel lookup.
func (c *CachingMedicineRepository) cacheKey(pillLabel string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(pillLabel))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingMedicineRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
