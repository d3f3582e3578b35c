// Package idseq allocates monotonically increasing entity ids.
package idseq

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// SeedFunc returns the largest id already in use.
type SeedFunc func(ctx context.Context) (int64, error)

// Sequence hands out ids starting right after the seed. The seed is read
// lazily on the first allocation and retried until it succeeds.
type Sequence struct {
	seed SeedFunc

	mu     sync.Mutex
	seeded atomic.Bool
	last   atomic.Int64
}

func New(seed SeedFunc) *Sequence {
	return &Sequence{seed: seed}
}

func (s *Sequence) Next(ctx context.Context) (int64, error) {
	if !s.seeded.Load() {
		if err := s.init(ctx); err != nil {
			return 0, err
		}
	}
	return s.last.Add(1), nil
}

func (s *Sequence) init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seeded.Load() {
		return nil
	}

	var maxID int64
	if s.seed != nil {
		var err error
		if maxID, err = s.seed(ctx); err != nil {
			return fmt.Errorf("failed to seed id sequence: %w", err)
		}
	}

	s.last.Store(maxID)
	s.seeded.Store(true)
	return nil
}
