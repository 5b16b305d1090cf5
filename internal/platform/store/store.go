// Package store provides a unified interface to the process-lifetime storage backends
package store

import (
	"context"
	"errors"
	"fmt"

	"lexis/internal/platform/logger"
)

// Store is the facade for the configured backends
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	// zero means a no op zerolog logger
	Log logger.Logger

	// Mem is the in-memory keyed seam, nil when disabled
	Mem Keyed
}

// Keyed is the read and write surface repos use for keyed records
// Snapshot returns a stable copy in insertion order, safe to iterate
// while the store keeps mutating
type Keyed interface {
	Insert(ctx context.Context, key string, val any) error
	Get(ctx context.Context, key string) (any, bool)
	Delete(ctx context.Context, key string) (any, bool)
	Snapshot(ctx context.Context) []any
	Len(ctx context.Context) int
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Config selects which backends Open constructs
type Config struct {
	Mem MemConfig
}

// MemConfig configures the in-memory backend
type MemConfig struct {
	Enabled bool

	// InitialCapacity presizes the index, 0 means a small default
	InitialCapacity int
}

// Option mutates the Store during Open
type Option func(*Store) error

// WithLogger attaches a logger to the store and its subclients
func WithLogger(l logger.Logger) Option {
	return func(s *Store) error {
		s.Log = l
		return nil
	}
}

// Open constructs a Store with the requested backends
// backends not enabled in cfg remain nil on the Store
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// defaults for zero logger to avoid nil checks
	s.Log = s.Log.With().Logger()

	if cfg.Mem.Enabled {
		s.Mem = NewMemory(cfg.Mem.InitialCapacity)
		s.Log.Debug().Int("capacity", cfg.Mem.InitialCapacity).Msg("memory store opened")
	}

	return s, nil
}

// Guard verifies all configured seams the Store knows about
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if s.Mem != nil {
		if p, ok := any(s.Mem).(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("mem: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes all initialized backends gracefully
// nil backends are ignored
func (s *Store) Close(ctx context.Context) error {
	var errs []error
	if c, ok := s.Mem.(interface{ Close() error }); ok {
		if e := c.Close(); e != nil {
			errs = append(errs, e)
		}
	}
	return errors.Join(errs...)
}
