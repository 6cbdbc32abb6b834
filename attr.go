package modmap

import (
	"errors"
	"fmt"
)

// ItemAccessor is the capability an [AttrMap] needs from the map it
// wraps. [Map] satisfies it.
type ItemAccessor[K comparable, V any] interface {
	Get(key K) (V, error)
	Set(key K, value V) error
	Delete(key K) error
	Contains(key K) (bool, error)
}

// AttrMap exposes a string-keyed map's entries as attributes. It stores
// nothing itself: every accessor delegates to the wrapped map's item
// operations, so key modification applies to attribute names exactly as
// it does to keys.
type AttrMap[V any] struct {
	items ItemAccessor[string, V]
}

// AsAttrs wraps items in an attribute-style view.
func AsAttrs[V any](items ItemAccessor[string, V]) *AttrMap[V] {
	return &AttrMap[V]{items: items}
}

// GetAttr returns the item stored under name. A missing item reports
// ErrAttributeNotFound naming the wrapped type and the attribute; it
// never surfaces as a key-lookup failure. Other failures (broken
// configuration) pass through untranslated.
func (a *AttrMap[V]) GetAttr(name string) (V, error) {
	v, err := a.items.Get(name)
	if errors.Is(err, ErrKeyNotFound) {
		var zero V
		return zero, a.missing(name)
	}
	return v, err
}

// SetAttr stores value under name, exactly like an item write.
func (a *AttrMap[V]) SetAttr(name string, value V) error {
	return a.items.Set(name, value)
}

// DelAttr removes the item stored under name. A missing item reports
// the same attribute-not-found shape as [AttrMap.GetAttr].
func (a *AttrMap[V]) DelAttr(name string) error {
	ok, err := a.items.Contains(name)
	if err != nil {
		return err
	}
	if !ok {
		return a.missing(name)
	}
	return a.items.Delete(name)
}

func (a *AttrMap[V]) missing(name string) error {
	return fmt.Errorf("%w: %T object has no attribute %q", ErrAttributeNotFound, a.items, name)
}
