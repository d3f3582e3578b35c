package infra_redis_idseq

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ZeNuW/filmorate/internal/service/idseq"
	"github.com/go-redis/redis"
)

// raiseTo moves the counter up to ARGV[1] and never down.
var raiseTo = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local floor = tonumber(ARGV[1])
if current < floor then
	redis.call('SET', KEYS[1], floor)
end
return 0
`)

// Driver allocates ids with INCR so several instances can share one sequence.
type Driver struct {
	client *redis.Client
	key    string
	seed   idseq.SeedFunc
	seeded atomic.Bool
}

func New(
	client *redis.Client,
	key string,
	seed idseq.SeedFunc,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		seed:   seed,
	}
}

func (d *Driver) Next(ctx context.Context) (int64, error) {
	if !d.seeded.Load() {
		if err := d.init(ctx); err != nil {
			return 0, err
		}
	}

	id, err := d.client.Incr(d.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", d.key, err)
	}
	return id, nil
}

func (d *Driver) init(ctx context.Context) error {
	var floor int64
	if d.seed != nil {
		var err error
		if floor, err = d.seed(ctx); err != nil {
			return fmt.Errorf("failed to seed id sequence: %w", err)
		}
	}

	if err := raiseTo.Run(d.client, []string{d.key}, floor).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("failed to seed %s: %w", d.key, err)
	}
	d.seeded.Store(true)
	return nil
}
