package infra_redis_init

import (
	"fmt"
	"log"

	"github.com/ZeNuW/filmorate/internal/config"
	"github.com/go-redis/redis"
)

func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	client := redis.NewClient(Options(cfg))

	if err := client.Ping().Err(); err != nil {
		log.Fatal("redis ping failed", err)
	}

	return client
}

func Options(cfg config.RedisCache) *redis.Options {
	return &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Key joins the configured prefix and name with a colon.
func Key(cfg config.RedisCache, name string) string {
	if cfg.KeyPrefix != "" {
		return cfg.KeyPrefix + ":" + name
	}
	return name
}
