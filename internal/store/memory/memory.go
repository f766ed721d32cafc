package memory

import (
	"sync"

	"go.uber.org/zap"
	"multi_accessor/internal/model"
)

const DefaultInitialCapacity = 10

type Option func(*options)

type options struct {
	initialCapacity int
	maxRecords      int
}

// WithInitialCapacity sets the capacity allocated on first insertion.
// Non-positive values fall back to DefaultInitialCapacity.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}

// WithMaxRecords bounds growth. Zero means unbounded.
func WithMaxRecords(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxRecords = n
		}
	}
}

// Store is an append-only registry of instances kept in insertion order.
// Storage stays nil until the first Register call.
type Store[T any] struct {
	mu      sync.RWMutex
	records []*model.Instance[T]
	opts    options
	log     *zap.Logger
}

func New[T any](logger *zap.Logger, opts ...Option) *Store[T] {
	o := options{initialCapacity: DefaultInitialCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{opts: o, log: logger}
}
