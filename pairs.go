package modmap

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Pair is one key/value entry. Slices of Pair are the typed way to feed
// ordered entries into [Type.From] and [Map.Update]; loosely-typed
// sources ([]any) are unpacked into Pairs first.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// pairsOf coerces a positional source into a pair slice, before any
// modification. Unsupported sources and loose pairs that do not unpack
// into exactly two correctly-typed components report ErrMalformedPair.
func (t *Type[K, V]) pairsOf(src any) ([]Pair[K, V], error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case map[K]V:
		pairs := make([]Pair[K, V], 0, len(s))
		for k, v := range s {
			pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
		}
		return pairs, nil
	case *Map[K, V]:
		if s == nil {
			return nil, nil
		}
		return s.Items(), nil
	case []Pair[K, V]:
		return slices.Clone(s), nil
	case iter.Seq2[K, V]:
		return collectSeq(s), nil
	case func(func(K, V) bool):
		// Raw iterator literals carry the unnamed func type, which a
		// type switch does not fold into the iter.Seq2 case.
		return collectSeq(iter.Seq2[K, V](s)), nil
	case []any:
		pairs := make([]Pair[K, V], len(s))
		for i, el := range s {
			p, err := loosePair[K, V](i, el)
			if err != nil {
				return nil, err
			}
			pairs[i] = p
		}
		return pairs, nil
	}
	return nil, fmt.Errorf("%w: cannot take pairs from %T", ErrMalformedPair, src)
}

func collectSeq[K comparable, V any](seq iter.Seq2[K, V]) []Pair[K, V] {
	var pairs []Pair[K, V]
	for k, v := range seq {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return pairs
}

// loosePair unpacks one element of a []any source. Accepted shapes are
// a Pair[K, V], a [2]any, or any slice/array of length exactly two.
func loosePair[K comparable, V any](i int, el any) (Pair[K, V], error) {
	var zero Pair[K, V]

	if p, ok := el.(Pair[K, V]); ok {
		return p, nil
	}

	var kv [2]any
	switch e := el.(type) {
	case [2]any:
		kv = e
	case []any:
		if len(e) != 2 {
			return zero, fmt.Errorf("%w: element %d has %d components, want 2", ErrMalformedPair, i, len(e))
		}
		kv[0], kv[1] = e[0], e[1]
	default:
		rv := reflect.ValueOf(el)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return zero, fmt.Errorf("%w: element %d is %T, not a key/value pair", ErrMalformedPair, i, el)
		}
		if rv.Len() != 2 {
			return zero, fmt.Errorf("%w: element %d has %d components, want 2", ErrMalformedPair, i, rv.Len())
		}
		kv[0], kv[1] = rv.Index(0).Interface(), rv.Index(1).Interface()
	}

	k, ok := kv[0].(K)
	if !ok {
		return zero, fmt.Errorf("%w: element %d key %v (%T) does not fit the key type", ErrMalformedPair, i, kv[0], kv[0])
	}
	v, ok := kv[1].(V)
	if !ok && kv[1] != nil {
		return zero, fmt.Errorf("%w: element %d value %v (%T) does not fit the value type", ErrMalformedPair, i, kv[1], kv[1])
	}
	// A nil component leaves v as V's zero value.
	return Pair[K, V]{Key: k, Value: v}, nil
}

// checkHashable guards map indexing when K is an interface type: an
// uncomparable dynamic value (slice, map, func, ...) would panic on
// store or lookup. For concrete K the compiler already guarantees
// comparability and this is a no-op.
func checkHashable[K comparable](key K) error {
	rv := reflect.ValueOf(&key).Elem()
	if rv.Kind() == reflect.Interface && !rv.IsNil() && !rv.Elem().Comparable() {
		return fmt.Errorf("%w: %T", ErrUnhashableKey, rv.Elem().Interface())
	}
	return nil
}
