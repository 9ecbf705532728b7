package cache

import (
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/config"
)

func NewMemoryCacheWithClock(cfg *config.CacheConfig, now func() time.Time) Cache {
	return newMemoryCache(cfg, now)
}
