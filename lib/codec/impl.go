package codec

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
)

// --------------------------------------------------------------------------
// JSON Codec
// --------------------------------------------------------------------------

// jsonCodec encodes records as JSON. This is the default: the values are
// human-readable, inspectable with standard tools, and byte-compatible
// with the record format the application has always stored.
type jsonCodec struct{}

// NewJSONCodec returns the JSON record codec.
func NewJSONCodec() Codec {
	return jsonCodec{}
}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(b []byte, v any) error {
	return json.Unmarshal(b, v)
}

// --------------------------------------------------------------------------
// GOB Codec
// --------------------------------------------------------------------------

// gobCodec encodes records with Go's gob format. Values come out smaller
// than JSON but are opaque to anything that is not a Go program knowing
// the record types.
type gobCodec struct{}

// NewGOBCodec returns the gob record codec.
func NewGOBCodec() Codec {
	return gobCodec{}
}

func (gobCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobCodec) Unmarshal(b []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(b)).Decode(v)
}
