package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZeNuW/filmorate/internal/config"
	http_feed "github.com/ZeNuW/filmorate/internal/delivery/http/feed"
	http_film "github.com/ZeNuW/filmorate/internal/delivery/http/film"
	http_init "github.com/ZeNuW/filmorate/internal/delivery/http/init"
	http_access_middleware "github.com/ZeNuW/filmorate/internal/delivery/http/middleware/access"
	http_logger_middleware "github.com/ZeNuW/filmorate/internal/delivery/http/middleware/logger"
	http_ratelimit_middleware "github.com/ZeNuW/filmorate/internal/delivery/http/middleware/ratelimit"
	http_reference "github.com/ZeNuW/filmorate/internal/delivery/http/reference"
	http_user "github.com/ZeNuW/filmorate/internal/delivery/http/user"
	ws_feed "github.com/ZeNuW/filmorate/internal/delivery/ws/feed"
	infra_local_popular "github.com/ZeNuW/filmorate/internal/infra/local/popular"
	infra_memory "github.com/ZeNuW/filmorate/internal/infra/memory"
	infra_postgres_film "github.com/ZeNuW/filmorate/internal/infra/postgres/film"
	infra_postgres_friendship "github.com/ZeNuW/filmorate/internal/infra/postgres/friendship"
	infra_pg_init "github.com/ZeNuW/filmorate/internal/infra/postgres/init"
	infra_postgres_like "github.com/ZeNuW/filmorate/internal/infra/postgres/like"
	infra_postgres_reference "github.com/ZeNuW/filmorate/internal/infra/postgres/reference"
	infra_postgres_user "github.com/ZeNuW/filmorate/internal/infra/postgres/user"
	infra_redis_idseq "github.com/ZeNuW/filmorate/internal/infra/redis/idseq"
	infra_redis_init "github.com/ZeNuW/filmorate/internal/infra/redis/init"
	infra_redis_popular "github.com/ZeNuW/filmorate/internal/infra/redis/popular"
	"github.com/ZeNuW/filmorate/internal/logging"
	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/ZeNuW/filmorate/internal/service/eventbus"
	"github.com/ZeNuW/filmorate/internal/service/idseq"
	usecase_film "github.com/ZeNuW/filmorate/internal/usecase/film"
	usecase_friendship "github.com/ZeNuW/filmorate/internal/usecase/friendship"
	usecase_like "github.com/ZeNuW/filmorate/internal/usecase/like"
	usecase_popular "github.com/ZeNuW/filmorate/internal/usecase/popular"
	usecase_reference "github.com/ZeNuW/filmorate/internal/usecase/reference"
	usecase_user "github.com/ZeNuW/filmorate/internal/usecase/user"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
	"github.com/jmoiron/sqlx"
)

var (
	ErrMissingPostgres = errors.New("postgres connection is required")
	ErrMissingRedis    = errors.New("redis connection is required")
	ErrUnknownBackend  = errors.New("unknown backend")
)

// Dependencies are the external connections the app was started with.
type Dependencies struct {
	DB    *sqlx.DB
	Redis *redis.Client
}

type filmStore interface {
	usecase_film.Repository
	MaxID(ctx context.Context) (int64, error)
}

type userStore interface {
	usecase_user.Repository
	MaxID(ctx context.Context) (int64, error)
}

type stores struct {
	films       filmStore
	users       userStore
	friendships usecase_friendship.Repository
	likes       usecase_like.Repository
	reference   usecase_reference.Source
}

type idAllocator interface {
	Next(ctx context.Context) (int64, error)
}

type App struct {
	cfg    *config.Config
	pool   *http_init.ControllerPool
	logger *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, deps Dependencies, logger *slog.Logger) (*App, error) {
	st, err := newStores(cfg, deps)
	if err != nil {
		return nil, err
	}

	catalog := usecase_reference.NewDefault()
	if st.reference != nil {
		if catalog, err = usecase_reference.Load(ctx, st.reference); err != nil {
			return nil, err
		}
	}

	filmIDs, err := newAllocator(cfg, deps, "films", st.films.MaxID)
	if err != nil {
		return nil, err
	}
	userIDs, err := newAllocator(cfg, deps, "users", st.users.MaxID)
	if err != nil {
		return nil, err
	}
	cache, err := newPopularCache(cfg, deps)
	if err != nil {
		return nil, err
	}

	bus := eventbus.New(logger)

	likeUC := usecase_like.New(st.likes, st.films, st.users, usecase_like.WithPublisher(bus))
	filmUC := usecase_film.New(st.films, likeUC, catalog, filmIDs, usecase_film.WithPublisher(bus))
	userUC := usecase_user.New(st.users, userIDs)
	friendshipUC := usecase_friendship.New(st.friendships, userUC, usecase_friendship.WithPublisher(bus))

	popularOpts := []usecase_popular.Option{usecase_popular.WithLogger(logger)}
	if cache != nil {
		popularOpts = append(popularOpts, usecase_popular.WithCache(cache))
	}
	popularUC := usecase_popular.New(filmUC, popularOpts...)

	hub := ws_feed.New(logger)

	bus.On(popularUC.Invalidate,
		model.EventLikeAdded, model.EventLikeRemoved, model.EventFilmCreated, model.EventFilmUpdated)
	bus.On(hub.Handle,
		model.EventFriendAdded, model.EventFriendRemoved, model.EventLikeAdded, model.EventLikeRemoved)

	pool := http_init.NewControllerPool(
		http_init.WithLogger(logger),
		http_init.WithMiddleware(middlewares(cfg, logger)...),
	)
	pool.Add(http_film.New(filmUC, likeUC, popularUC, http_film.WithLogger(logger)))
	pool.Add(http_user.New(userUC, friendshipUC, http_user.WithLogger(logger)))
	pool.Add(http_reference.New(catalog))
	pool.Add(http_feed.New(userUC, hub, http_feed.WithLogger(logger)))
	pool.Register()

	return &App{cfg: cfg, pool: pool, logger: logger}, nil
}

func (a *App) Handler() http.Handler {
	return a.pool.Handler()
}

func (a *App) Run(ctx context.Context) error {
	return a.pool.RunAll(ctx, a.cfg.HTTP.Host, a.cfg.HTTP.Port)
}

func Go(cfg *config.Config) {
	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)
	gin.SetMode(cfg.HTTP.GinMode)

	var deps Dependencies
	if cfg.Storage.Backend == config.BackendPostgres {
		deps.DB = infra_pg_init.MustEstablishConn(cfg.Postgres)
		defer deps.DB.Close()
	}
	if cfg.UsesRedis() {
		deps.Redis = infra_redis_init.MustEstablishConn(cfg.Redis)
		defer deps.Redis.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrate(ctx, cfg.Postgres, deps.DB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	a, err := New(ctx, cfg, deps, logger)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		logger.Error("http server stopped", slog.String("error", err.Error()))
	}
}

// migrate applies the schema once per start when auto-migration is on.
func migrate(ctx context.Context, cfg config.Postgres, db *sqlx.DB) error {
	if db == nil || !cfg.AutoMigrate {
		return nil
	}
	return infra_pg_init.Migrate(ctx, db)
}

func newStores(cfg *config.Config, deps Dependencies) (*stores, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return &stores{
			films:       infra_memory.NewFilmRepository(),
			users:       infra_memory.NewUserRepository(),
			friendships: infra_memory.NewFriendshipRepository(),
			likes:       infra_memory.NewLikeRepository(),
		}, nil
	case config.BackendPostgres:
		if deps.DB == nil {
			return nil, ErrMissingPostgres
		}
		return &stores{
			films:       infra_postgres_film.New(deps.DB),
			users:       infra_postgres_user.New(deps.DB),
			friendships: infra_postgres_friendship.New(deps.DB),
			likes:       infra_postgres_like.New(deps.DB),
			reference:   infra_postgres_reference.New(deps.DB),
		}, nil
	default:
		return nil, fmt.Errorf("%w: storage %q", ErrUnknownBackend, cfg.Storage.Backend)
	}
}

func newAllocator(cfg *config.Config, deps Dependencies, name string, seed idseq.SeedFunc) (idAllocator, error) {
	switch cfg.Storage.IDAllocator {
	case config.BackendLocal:
		return idseq.New(seed), nil
	case config.BackendRedis:
		if deps.Redis == nil {
			return nil, ErrMissingRedis
		}
		return infra_redis_idseq.New(deps.Redis, infra_redis_init.Key(cfg.Redis, "ids:"+name), seed), nil
	default:
		return nil, fmt.Errorf("%w: id allocator %q", ErrUnknownBackend, cfg.Storage.IDAllocator)
	}
}

func newPopularCache(cfg *config.Config, deps Dependencies) (usecase_popular.Cache, error) {
	switch cfg.Popular.Cache {
	case config.BackendNone:
		return nil, nil
	case config.BackendLocal:
		return infra_local_popular.New(cfg.Popular.TTL), nil
	case config.BackendRedis:
		if deps.Redis == nil {
			return nil, ErrMissingRedis
		}
		return infra_redis_popular.New(deps.Redis, infra_redis_init.Key(cfg.Redis, "popular"), cfg.Popular.TTL), nil
	default:
		return nil, fmt.Errorf("%w: popular cache %q", ErrUnknownBackend, cfg.Popular.Cache)
	}
}

func middlewares(cfg *config.Config, logger *slog.Logger) []gin.HandlerFunc {
	handlers := []gin.HandlerFunc{http_logger_middleware.RequestLogger(logger)}
	if cfg.HTTP.RateLimitRequests > 0 {
		limiter := http_ratelimit_middleware.New(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow, cfg.HTTP.RateLimitBurst, 0)
		handlers = append(handlers, limiter.Middleware())
	}
	handlers = append(handlers, http_access_middleware.ReadOnlyBadGatewayMiddleware(cfg.HTTP.Mode))
	return handlers
}

