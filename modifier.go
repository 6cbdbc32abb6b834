package modmap

import "fmt"

// Modifier is a pure transformation applied to a key or a value as it
// crosses the map's boundary. Key modifiers must keep the key usable as
// a map key; value modifiers may return anything assignable to V.
type Modifier[T any] func(T) T

// chain is the resolved form of a modifier specification: either an
// ordered list of modifiers folded left to right, or a resolution error
// held back until the chain is first exercised.
type chain[T any] struct {
	mods []Modifier[T]
	err  error
}

// resolveModifiers turns a loosely-typed modifier specification into a
// chain. Accepted specifications:
//
//	nil                          no modification
//	Modifier[T] / func(T) T      applied once
//	[]Modifier[T] / []func(T) T  applied in order, result threaded forward
//
// A slice element must be a real function; a nil element makes the
// whole specification invalid.
//
// A bare string is rejected explicitly: it is a common slip (iterable
// in spirit, callable in nobody's) and would otherwise be reported with
// a less pointed message. Any other value is an invalid specification.
// Resolution never fails loudly; the error is carried inside the chain
// and returned by the first operation that needs it.
func resolveModifiers[T any](spec any) chain[T] {
	switch m := spec.(type) {
	case nil:
		return chain[T]{}
	case string:
		return chain[T]{err: fmt.Errorf("%w: bare string %q, want a modifier func or a slice of modifier funcs", ErrInvalidModifiers, m)}
	case Modifier[T]:
		if m == nil {
			return chain[T]{}
		}
		return chain[T]{mods: []Modifier[T]{m}}
	case func(T) T:
		if m == nil {
			return chain[T]{}
		}
		return chain[T]{mods: []Modifier[T]{m}}
	case []Modifier[T]:
		mods := make([]Modifier[T], len(m))
		for i, f := range m {
			if f == nil {
				return chain[T]{err: fmt.Errorf("%w: element %d is nil", ErrInvalidModifiers, i)}
			}
			mods[i] = f
		}
		return chain[T]{mods: mods}
	case []func(T) T:
		mods := make([]Modifier[T], len(m))
		for i, f := range m {
			if f == nil {
				return chain[T]{err: fmt.Errorf("%w: element %d is nil", ErrInvalidModifiers, i)}
			}
			mods[i] = f
		}
		return chain[T]{mods: mods}
	default:
		return chain[T]{err: fmt.Errorf("%w: %v (%T), want a modifier func or a slice of modifier funcs", ErrInvalidModifiers, spec, spec)}
	}
}

// apply folds the chain over item. An empty chain returns item
// unchanged; a chain that failed resolution returns its stored error.
func (c chain[T]) apply(item T) (T, error) {
	if c.err != nil {
		return item, c.err
	}
	for _, m := range c.mods {
		item = m(item)
	}
	return item, nil
}
