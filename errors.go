package modmap

import "errors"

// Sentinel errors returned by map operations. Errors carry context and
// wrap one of these sentinels; match with [errors.Is].
var (
	// ErrInvalidModifiers reports a modifier specification that is
	// neither nil, a modifier func, nor a slice of modifier funcs.
	// It surfaces on the first operation that exercises the broken
	// chain, not when the configuration is set.
	ErrInvalidModifiers = errors.New("invalid modifiers")

	// ErrKeyNotFound reports that a key, after modification, has no
	// entry in the map.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnhashableKey reports that a modified key cannot be used as a
	// map key. Only reachable when K is an interface type holding an
	// uncomparable dynamic value.
	ErrUnhashableKey = errors.New("unhashable key")

	// ErrMalformedPair reports a pair-source element that does not
	// unpack into exactly one key and one value of the map's types.
	ErrMalformedPair = errors.New("malformed pair")

	// ErrAttributeNotFound reports an attribute access on an [AttrMap]
	// with no corresponding item.
	ErrAttributeNotFound = errors.New("attribute not found")
)
