package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Archive documents are plain maps of strings, for which JSON is stable
// and portable. If you need custom encoding (e.g. protobuf/msgpack),
// implement Codec and set it on the puzzle archive via puzzle.WithCodec.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
var Default Codec = JSON{}
