package modmap

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// MarshalJSON encodes the stored (already modified) entries as a JSON
// object.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(m.data)
}

// UnmarshalJSON decodes a JSON object and replaces the map's contents
// with it, running every decoded key and value through the modifier
// chains first. The map must have been created from a [Type]; on any
// decode or pipeline error the previous contents are kept.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	if m.typ == nil {
		return fmt.Errorf("modmap: cannot unmarshal into a zero Map, create one with Type.New")
	}
	var raw map[K]V
	if err := jsoniter.ConfigFastest.Unmarshal(data, &raw); err != nil {
		return err
	}
	pairs := make([]Pair[K, V], 0, len(raw))
	for k, v := range raw {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	staged, err := m.typ.build(pairs)
	if err != nil {
		return err
	}
	m.data = staged
	return nil
}
