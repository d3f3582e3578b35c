package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendLocal    = "local"
	BackendNone     = "none"
)

type HTTPServer struct {
	Host    string
	Port    string
	Mode    string
	GinMode string

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitBurst    int
}

type Storage struct {
	Backend     string
	IDAllocator string
}

type RedisCache struct {
	Host      string
	Port      string
	Password  string
	DB        int
	KeyPrefix string
}

type Postgres struct {
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

type Popular struct {
	Cache string
	TTL   time.Duration
}

type Log struct {
	Level  string
	Format string
}

type Config struct {
	HTTP     HTTPServer
	Storage  Storage
	Redis    RedisCache
	Postgres Postgres
	Popular  Popular
	Log      Log
}

// UsesRedis reports whether any component needs a redis connection.
func (c *Config) UsesRedis() bool {
	return c.Storage.IDAllocator == BackendRedis || c.Popular.Cache == BackendRedis
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := FromEnv()

	log.Printf("%s backend config : %+v\n", logtag, redacted(*cfg))
	return cfg
}

// FromEnv builds the config from the current environment only.
func FromEnv() *Config {
	return &Config{
		HTTP:     *newHTTP(),
		Storage:  *newStorage(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Popular:  *newPopular(),
		Log:      *newLog(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:              getenv("HTTP_PORT", "8080"),
		Host:              getenv("HTTP_HOST", "0.0.0.0"),
		Mode:              getenv("HTTP_MODE", "RW"),
		GinMode:           getenv("GIN_MODE", "release"),
		RateLimitRequests: getenvInt("HTTP_RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getenvDuration("HTTP_RATE_LIMIT_WINDOW", time.Second),
		RateLimitBurst:    getenvInt("HTTP_RATE_LIMIT_BURST", 50),
	}
}

func newStorage() *Storage {
	return &Storage{
		Backend:     getenv("STORAGE_BACKEND", BackendMemory),
		IDAllocator: getenv("ID_ALLOCATOR", BackendLocal),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:      getenv("REDIS_PORT", "6379"),
		Host:      getenv("REDIS_HOST", "redis"),
		Password:  getenv("REDIS_PASSWORD", "shared"),
		DB:        getenvInt("REDIS_DB", 0),
		KeyPrefix: getenv("REDIS_KEY_PREFIX", "filmorate"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:        getenv("DB_HOST", "localhost"),
		Port:        getenv("DB_PORT", "5432"),
		User:        getenv("DB_USER", "admin"),
		Password:    getenv("DB_PASSWORD", "shared"),
		DBName:      getenv("DB_NAME", "filmorate"),
		SSLMode:     getenv("DB_SSLMODE", "disable"),
		AutoMigrate: getenvBool("DB_AUTO_MIGRATE", true),
	}
}

func newPopular() *Popular {
	return &Popular{
		Cache: getenv("POPULAR_CACHE", BackendLocal),
		TTL:   getenvDuration("POPULAR_CACHE_TTL", 30*time.Second),
	}
}

func newLog() *Log {
	return &Log{
		Level:  getenv("LOG_LEVEL", "info"),
		Format: getenv("LOG_FORMAT", "json"),
	}
}

func redacted(cfg Config) Config {
	if cfg.Postgres.Password != "" {
		cfg.Postgres.Password = "***"
	}
	if cfg.Redis.Password != "" {
		cfg.Redis.Password = "***"
	}
	return cfg
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, masked(key, defaultValue))
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, masked(key, val))
	return val
}

// masked hides secret values in startup output.
func masked(key, val string) string {
	if val != "" && strings.HasSuffix(key, "PASSWORD") {
		return "***"
	}
	return val
}

func getenvInt(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	val, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("%s %s is not an integer (%q). Using default value %d\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return val
}

func getenvBool(key string, defaultValue bool) bool {
	raw := getenv(key, strconv.FormatBool(defaultValue))
	val, err := strconv.ParseBool(raw)
	if err != nil {
		fmt.Printf("%s %s is not a boolean (%q). Using default value %t\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return val
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	val, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("%s %s is not a duration (%q). Using default value %s\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return val
}
