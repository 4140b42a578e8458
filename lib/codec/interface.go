package codec

// Codec is the interface for all record serializers. The account and books
// packages use a Codec to turn records into the byte values stored in the
// key-value store and back.
type Codec interface {
	// Marshal serializes a record into a byte slice.
	// It returns the serialized bytes and an error if any.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes a byte slice into a record.
	// It takes the serialized bytes and a pointer to the target record.
	// It returns an error if any.
	Unmarshal(b []byte, v any) error
}
