// Package codec centralizes payload encoding.
//
// Two formats live here: a fixed binary layout for letter sequences
// shared between the engine and its workers, and a pluggable document
// codec used for archive persistence. Codec selection is a
// breaking-change boundary: bytes written by one codec may not decode
// with another.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// The name is the one the codec's Name method returns, so a codec name
// stored alongside a payload can be resolved back to its codec.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
