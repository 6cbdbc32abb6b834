package modmap

import "runtime"

// Type is a specialized map type: the resolved modifier chains plus the
// bulk-transform strategy, shared by reference between every [Map]
// created from it. Produce one with [Define].
//
// The Set* methods change configuration for ALL live instances of the
// Type, affecting operations performed afterwards only — entries
// already stored are never re-modified. Updates are last write wins and
// unsynchronized; callers mutating a Type while other goroutines use it
// need their own locking, same as for the maps themselves.
type Type[K comparable, V any] struct {
	keys     chain[K]
	values   chain[V]
	strategy Strategy
	workers  int
}

// Define validates cfg's strategy and worker count and resolves its
// modifier specifications into a new Type. Invalid modifier
// specifications do not fail here; they are reported by the first
// operation that exercises the chain.
func Define[K comparable, V any](cfg Config[K, V]) (*Type[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Type[K, V]{
		keys:     resolveModifiers[K](cfg.KeyModifiers),
		values:   resolveModifiers[V](cfg.ValueModifiers),
		strategy: cfg.Strategy,
		workers:  cfg.Workers,
	}, nil
}

// SetKeyModifiers replaces the key chain for all instances of t.
func (t *Type[K, V]) SetKeyModifiers(spec any) {
	t.keys = resolveModifiers[K](spec)
}

// SetValueModifiers replaces the value chain for all instances of t.
func (t *Type[K, V]) SetValueModifiers(spec any) {
	t.values = resolveModifiers[V](spec)
}

// SetStrategy replaces the bulk-transform strategy and pool size for
// all instances of t.
func (t *Type[K, V]) SetStrategy(s Strategy, workers int) error {
	if err := (Config[K, V]{Strategy: s, Workers: workers}).Validate(); err != nil {
		return err
	}
	t.strategy = s
	t.workers = workers
	return nil
}

func (t *Type[K, V]) poolSize() int {
	if t.workers > 0 {
		return t.workers
	}
	return runtime.GOMAXPROCS(0)
}

// New returns an empty map of this type. It cannot fail: no chain is
// exercised until items flow through.
func (t *Type[K, V]) New() *Map[K, V] {
	return &Map[K, V]{typ: t, data: make(map[K]V)}
}

// From builds a map from an optional positional source plus trailing
// named pairs, the same contract as [Map.Update]: every supplied key
// and value runs through its chain before anything is stored. src may
// be nil, a map[K]V, a *Map[K, V], a []Pair[K, V], an iter.Seq2[K, V],
// or a []any of loose pairs.
func (t *Type[K, V]) From(src any, named ...Pair[K, V]) (*Map[K, V], error) {
	m := t.New()
	if err := m.Update(src, named...); err != nil {
		return nil, err
	}
	return m, nil
}

// FromKeys builds a map where every key, after key modification, maps
// to the same shared value, after value modification. With no explicit
// value the zero value of V is used, and the value chain still applies
// to it.
func (t *Type[K, V]) FromKeys(keys []K, value ...V) (*Map[K, V], error) {
	var v V
	if len(value) > 0 {
		v = value[0]
	}
	pairs := make([]Pair[K, V], len(keys))
	for i, k := range keys {
		pairs[i] = Pair[K, V]{Key: k, Value: v}
	}
	m := t.New()
	if err := m.merge(pairs); err != nil {
		return nil, err
	}
	return m, nil
}
