package modmap

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Map is a map[K]V behind a modifier pipeline: every key is run through
// the key chain before lookup, store, delete, or membership test, and
// every value is run through the value chain exactly once, on the way
// in. Stored entries are therefore always fully modified — the map's
// key space is the modified key space and nothing else.
//
// A Map provides no internal locking. The pipeline is correct on its
// own; concurrent mutation from multiple goroutines needs external
// synchronization.
type Map[K comparable, V any] struct {
	typ  *Type[K, V]
	data map[K]V
}

// modifyKey runs the key chain and guards hashability of the result.
func (m *Map[K, V]) modifyKey(key K) (K, error) {
	k, err := m.typ.keys.apply(key)
	if err != nil {
		return k, err
	}
	if err := checkHashable(k); err != nil {
		return k, err
	}
	return k, nil
}

// Get returns the value stored under the modified key.
func (m *Map[K, V]) Get(key K) (V, error) {
	var zero V
	k, err := m.modifyKey(key)
	if err != nil {
		return zero, err
	}
	v, ok := m.data[k]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return v, nil
}

// GetDefault returns the value stored under the modified key, or def
// when absent. def is returned as given — the value chain does not
// touch it.
func (m *Map[K, V]) GetDefault(key K, def V) (V, error) {
	k, err := m.modifyKey(key)
	if err != nil {
		return def, err
	}
	if v, ok := m.data[k]; ok {
		return v, nil
	}
	return def, nil
}

// Set stores the modified value under the modified key.
func (m *Map[K, V]) Set(key K, value V) error {
	k, err := m.modifyKey(key)
	if err != nil {
		return err
	}
	v, err := m.typ.values.apply(value)
	if err != nil {
		return err
	}
	m.data[k] = v
	return nil
}

// Delete removes the entry under the modified key.
func (m *Map[K, V]) Delete(key K) error {
	k, err := m.modifyKey(key)
	if err != nil {
		return err
	}
	if _, ok := m.data[k]; !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	delete(m.data, k)
	return nil
}

// Contains reports whether the modified key has an entry. It only
// errors for a broken modifier configuration or an unhashable modified
// key.
func (m *Map[K, V]) Contains(key K) (bool, error) {
	k, err := m.modifyKey(key)
	if err != nil {
		return false, err
	}
	_, ok := m.data[k]
	return ok, nil
}

// Pop removes and returns the value under the modified key. When the
// key is absent, Pop returns the optional default if one was given and
// ErrKeyNotFound otherwise. The default is not value-modified.
func (m *Map[K, V]) Pop(key K, def ...V) (V, error) {
	var zero V
	k, err := m.modifyKey(key)
	if err != nil {
		return zero, err
	}
	if v, ok := m.data[k]; ok {
		delete(m.data, k)
		return v, nil
	}
	if len(def) > 0 {
		return def[0], nil
	}
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
}

// SetDefault stores the modified default under the modified key if the
// key is absent, and returns whatever is stored under the key
// afterwards. The value chain runs over def regardless of whether it is
// inserted.
func (m *Map[K, V]) SetDefault(key K, def V) (V, error) {
	var zero V
	k, err := m.modifyKey(key)
	if err != nil {
		return zero, err
	}
	d, err := m.typ.values.apply(def)
	if err != nil {
		return zero, err
	}
	if v, ok := m.data[k]; ok {
		return v, nil
	}
	m.data[k] = d
	return d, nil
}

// Update merges a positional source plus trailing named pairs into the
// map: all supplied pairs are modified first (using the configured
// [Strategy]), then merged in one pass, named pairs after the source so
// they win on collision, the standard merge order. On any error the map
// is left unchanged.
func (m *Map[K, V]) Update(src any, named ...Pair[K, V]) error {
	pairs, err := m.typ.pairsOf(src)
	if err != nil {
		return err
	}
	pairs = append(pairs, named...)
	return m.merge(pairs)
}

func (m *Map[K, V]) merge(pairs []Pair[K, V]) error {
	if len(pairs) == 0 {
		return nil
	}
	staged, err := m.typ.build(pairs)
	if err != nil {
		return err
	}
	maps.Copy(m.data, staged)
	return nil
}

// Len returns the number of stored entries.
func (m *Map[K, V]) Len() int { return len(m.data) }

// Keys returns the stored (modified) keys in unspecified order.
func (m *Map[K, V]) Keys() []K { return slices.Collect(maps.Keys(m.data)) }

// Values returns the stored values in unspecified order.
func (m *Map[K, V]) Values() []V { return slices.Collect(maps.Values(m.data)) }

// Items returns the stored entries in unspecified order.
func (m *Map[K, V]) Items() []Pair[K, V] {
	items := make([]Pair[K, V], 0, len(m.data))
	for k, v := range m.data {
		items = append(items, Pair[K, V]{Key: k, Value: v})
	}
	return items
}

// All iterates over the stored entries.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return maps.All(m.data) }

// Snapshot returns a copy of the backing map.
func (m *Map[K, V]) Snapshot() map[K]V { return maps.Clone(m.data) }

// Clear removes all entries.
func (m *Map[K, V]) Clear() { clear(m.data) }

// String renders the map like a native map literal.
func (m *Map[K, V]) String() string { return fmt.Sprintf("%v", m.data) }
