package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// decoderFor returns the shape decoder of tag, or nil for an unknown tag.
// It is a function rather than a package-level map because the decoders
// reach back into DecodeTagged through Denormalize.
func decoderFor(tag Tag) func(map[string]any) (any, bool) {
	switch tag {
	case TagIncrement:
		return decodeIncrement
	case TagAdd:
		return decodeAdd
	case TagAddUnique:
		return decodeAddUnique
	case TagRemove:
		return decodeRemove
	case TagAddRelation:
		return decodeAddRelation
	case TagRemoveRelation:
		return decodeRemoveRelation
	case TagDate:
		return decodeDate
	case TagPointer:
		return decodePointer
	case TagRelation:
		return decodeRelation
	case TagGeoPoint:
		return decodeGeoPoint
	}
	return nil
}

// EncodeTagged returns the tagged JSON object for v. It reports false for
// anything without a tagged form, including primitives, slices and maps,
// which callers pass through unchanged.
func EncodeTagged(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case Tagged:
		if isNilPointer(t) {
			return nil, false
		}
		return t.Encode(), true
	}
	return nil, false
}

// DecodeTagged tries each shape in TagPrecedence order and returns the first
// match. An object that matches no shape reports false and should be kept as
// a plain map.
func DecodeTagged(m map[string]any) (any, bool) {
	if m == nil {
		return nil, false
	}
	for _, tag := range TagPrecedence {
		if v, ok := decoderFor(tag)(m); ok {
			return v, true
		}
	}
	return nil, false
}

// DecodeAs matches m against a single shape, ignoring precedence.
func DecodeAs(m map[string]any, tag Tag) (any, bool) {
	dec := decoderFor(tag)
	if dec == nil || m == nil {
		return nil, false
	}
	return dec(m)
}

func hasDiscriminator(m map[string]any, key string, tag Tag) bool {
	s, ok := m[key].(string)
	return ok && s == string(tag)
}

// unmarshalTagged backs the UnmarshalJSON methods of the tagged types.
func unmarshalTagged(data []byte, tag Tag) (any, error) {
	var m map[string]any
	if err := (JSONUnmarshaler{}).Unmarshal(data, &m); err != nil {
		return nil, err
	}
	v, ok := DecodeAs(m, tag)
	if !ok {
		return nil, fmt.Errorf("json: value is not a %s: %s", tag, truncate(data))
	}
	return v, nil
}

func truncate(data []byte) string {
	const maxLen = 64
	if len(data) > maxLen {
		return string(data[:maxLen]) + "..."
	}
	return string(data)
}

// compile-time checks
var (
	_ Tagged         = Date{}
	_ Tagged         = Pointer{}
	_ Tagged         = Relation{}
	_ Tagged         = GeoPoint{}
	_ Tagged         = Increment{}
	_ Tagged         = Add{}
	_ Tagged         = AddUnique{}
	_ Tagged         = Remove{}
	_ Tagged         = AddRelation{}
	_ Tagged         = RemoveRelation{}
	_ json.Marshaler = Date{}
)
