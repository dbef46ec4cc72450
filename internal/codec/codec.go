// Package codec declares the serialization interfaces shared by the request
// and response layers. The concrete JSON implementation lives in pkg/models.
package codec

import "io"

type Encoder interface {
	Encode(v any) error
}

type Decoder interface {
	Decode(v any) error
}

type Marshaler interface {
	Marshal(v any) ([]byte, error)
	NewEncoder(w io.Writer) Encoder
}

// Unmarshaler decodes wire bytes. Implementations keep JSON numbers
// undecided (json.Number) so that integers and floats stay distinguishable.
type Unmarshaler interface {
	Unmarshal(data []byte, dst any) error
	NewDecoder(r io.Reader) Decoder
}
