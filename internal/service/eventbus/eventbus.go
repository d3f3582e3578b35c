package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ZeNuW/filmorate/internal/model"
)

type Handler func(ctx context.Context, e model.Event) error

// Bus dispatches events synchronously to every handler registered for the event type.
type Bus struct {
	rw       sync.RWMutex
	handlers map[model.EventType][]Handler
	logger   *slog.Logger
}

func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		handlers: make(map[model.EventType][]Handler),
		logger:   logger,
	}
}

// On registers fn for the listed types.
func (b *Bus) On(fn Handler, types ...model.EventType) {
	b.rw.Lock()
	defer b.rw.Unlock()

	for _, t := range types {
		b.handlers[t] = append(b.handlers[t], fn)
	}
}

// Publish never fails the caller: handler errors are logged.
func (b *Bus) Publish(ctx context.Context, e model.Event) {
	b.rw.RLock()
	handlers := b.handlers[e.Type]
	b.rw.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, e); err != nil {
			b.logger.Warn("event handler failed",
				slog.String("event", string(e.Type)),
				slog.Int64("user_id", e.UserID),
				slog.Int64("entity_id", e.EntityID),
				slog.String("error", err.Error()),
			)
		}
	}
}
