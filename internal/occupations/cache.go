package occupations

import (
	"context"
	"errors"
	"fmt"

	"github.com/nextstep-ai/guide-server/internal/platform/cache"
)

const datasetCacheKey = "occupations:dataset"

// DatasetCache stores the parsed classification in redis so restarts skip
// the remote fetch.
type DatasetCache struct {
	cache *cache.Cache
}

// NewDatasetCache wraps a platform cache. A nil cache disables persistence;
// Load then always misses and Store is a no-op.
func NewDatasetCache(c *cache.Cache) *DatasetCache {
	return &DatasetCache{cache: c}
}

// Load fetches the cached dataset. ok is false on a miss or when caching is
// disabled.
func (dc *DatasetCache) Load(ctx context.Context) (Dataset, bool, error) {
	if dc == nil || dc.cache == nil {
		return Dataset{}, false, nil
	}
	var d Dataset
	err := dc.cache.GetJSON(ctx, datasetCacheKey, &d)
	if errors.Is(err, cache.ErrMiss) {
		return Dataset{}, false, nil
	}
	if err != nil {
		return Dataset{}, false, fmt.Errorf("load cached dataset: %w", err)
	}
	return d, true, nil
}

// Store caches the dataset without expiry; the classification revises on a
// multi-year cycle.
func (dc *DatasetCache) Store(ctx context.Context, d Dataset) error {
	if dc == nil || dc.cache == nil {
		return nil
	}
	if err := dc.cache.SetJSON(ctx, datasetCacheKey, d, 0); err != nil {
		return fmt.Errorf("store dataset: %w", err)
	}
	return nil
}
