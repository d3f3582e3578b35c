package infra_redis_popular

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/go-redis/redis"
)

const scanBatch = 100

// Driver keeps each ranked list under its own key, prefix:count, so every
// entry carries its own TTL.
type Driver struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	prefix string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (d *Driver) key(count int) string {
	return d.prefix + ":" + strconv.Itoa(count)
}

func (d *Driver) Get(ctx context.Context, count int) ([]model.Film, bool, error) {
	raw, err := d.client.Get(d.key(count)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read popular cache: %w", err)
	}

	var films []model.Film
	if err := json.Unmarshal(raw, &films); err != nil {
		return nil, false, fmt.Errorf("failed to decode popular cache: %w", err)
	}
	return films, true, nil
}

// Set writes the entry with SET EX. A non-positive ttl keeps it until invalidation.
func (d *Driver) Set(ctx context.Context, count int, films []model.Film) error {
	raw, err := json.Marshal(films)
	if err != nil {
		return fmt.Errorf("failed to encode popular cache: %w", err)
	}

	ttl := d.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := d.client.Set(d.key(count), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write popular cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached size.
func (d *Driver) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := d.client.Scan(cursor, d.prefix+":*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("failed to scan popular cache: %w", err)
		}
		if len(keys) > 0 {
			if err := d.client.Del(keys...).Err(); err != nil {
				return fmt.Errorf("failed to drop popular cache: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
