package modmap

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Strategy selects how bulk construction and merging run the modifier
// chains over the supplied pairs.
type Strategy int

const (
	// Sequential applies chains pair by pair, in input order. The
	// default.
	Sequential Strategy = iota
	// ParallelUnordered spreads pairs across a worker pool and collects
	// results in completion order. Post-modification key collisions are
	// last write wins with no ordering guarantee.
	ParallelUnordered
	// ParallelOrdered spreads pairs across a worker pool but reassembles
	// results in input order.
	ParallelOrdered
)

func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case ParallelUnordered:
		return "parallel-unordered"
	case ParallelOrdered:
		return "parallel-ordered"
	}
	return "unknown"
}

// Config is the specialization surface for a map type: set it once,
// pass it to [Define], and every instance of the resulting [Type]
// shares it.
//
// KeyModifiers and ValueModifiers accept nil, a single
// [Modifier]/func, or a slice of them; see [Modifier]. Invalid
// specifications are not rejected here — they surface as
// [ErrInvalidModifiers] on the first operation that exercises the
// chain.
type Config[K comparable, V any] struct {
	KeyModifiers   any
	ValueModifiers any
	// Strategy picks the bulk-transform mode for construction, Update,
	// and FromKeys.
	Strategy Strategy
	// Workers is the pool size for the parallel strategies. Zero means
	// GOMAXPROCS; negative values fail validation.
	Workers int
}

// Validate checks Strategy and Workers. Modifier specifications are
// deliberately not validated here (they resolve lazily).
func (c Config[K, V]) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Strategy, validation.In(Sequential, ParallelUnordered, ParallelOrdered).Error("must be a defined strategy")),
		validation.Field(&c.Workers, validation.Min(0).Error("must not be negative")),
	)
}
