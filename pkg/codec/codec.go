// Package codec abstracts the serialization used to materialize snapshot
// data into caller-defined values.
package codec

// Marshaler encodes a value into bytes.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

// Unmarshaler decodes bytes into the destination value.
type Unmarshaler interface {
	Unmarshal(data []byte, dst any) error
}

// Codec is a paired Marshaler and Unmarshaler.
type Codec interface {
	Marshaler
	Unmarshaler
}
