package infra_local_popular

import (
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/patrickmn/go-cache"
)

// Cache is an in-process store for ranked lists. Entries are keyed by count.
type Cache struct {
	store *cache.Cache
}

func New(ttl time.Duration) *Cache {
	expiration := ttl
	if expiration <= 0 {
		expiration = cache.NoExpiration
	}
	return &Cache{store: cache.New(expiration, 2*ttl)}
}

func (c *Cache) Get(ctx context.Context, count int) ([]model.Film, bool, error) {
	v, ok := c.store.Get(strconv.Itoa(count))
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v.([]model.Film)), true, nil
}

func (c *Cache) Set(ctx context.Context, count int, films []model.Film) error {
	c.store.SetDefault(strconv.Itoa(count), slices.Clone(films))
	return nil
}

func (c *Cache) Invalidate(ctx context.Context) error {
	c.store.Flush()
	return nil
}
