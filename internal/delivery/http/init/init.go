package http_init

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
	logger *slog.Logger
}

type Option func(*ControllerPool)

// WithMiddleware installs handlers on the API group, in order.
func WithMiddleware(handlers ...gin.HandlerFunc) Option {
	return func(pool *ControllerPool) {
		pool.rg.Use(handlers...)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(pool *ControllerPool) {
		pool.logger = logger
	}
}

func NewControllerPool(opts ...Option) *ControllerPool {
	engine := gin.New()
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	pool := &ControllerPool{
		pool:   make([]Controller, 0, 10),
		rg:     engine.Group(""),
		engine: engine,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(pool)
	}
	return pool
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

// Handler exposes the engine, mainly for httptest.
func (pool *ControllerPool) Handler() http.Handler {
	return pool.engine
}

// RunAll serves until ctx is cancelled, then drains in-flight requests.
func (pool *ControllerPool) RunAll(ctx context.Context, host, port string) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           pool.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		pool.logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	pool.logger.Info("http server shutting down")
	return srv.Shutdown(shutdownCtx)
}
