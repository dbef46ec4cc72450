package models

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
	"github.com/ncmb/ncmb.go/internal/codec"
)

var (
	_ codec.Marshaler   = JSONMarshaler{}
	_ codec.Unmarshaler = JSONUnmarshaler{}
)

// JSONMarshaler writes wire JSON. Map keys are emitted in sorted order and
// HTML characters are left unescaped.
type JSONMarshaler struct {
}

func (c JSONMarshaler) Marshal(v any) ([]byte, error) {
	return json.MarshalWithOption(v, json.DisableHTMLEscape())
}

func (c JSONMarshaler) NewEncoder(w io.Writer) codec.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// JSONUnmarshaler reads wire JSON, keeping numbers as json.Number.
type JSONUnmarshaler struct {
}

func (c JSONUnmarshaler) Unmarshal(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(dst)
}

func (c JSONUnmarshaler) NewDecoder(r io.Reader) codec.Decoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec
}

// MarshalValue normalizes v and encodes it as wire JSON.
func MarshalValue(v any) ([]byte, error) {
	return JSONMarshaler{}.Marshal(Normalize(v))
}
