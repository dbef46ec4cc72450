package models

import (
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Normalize converts v into the form stored in an object's field map and
// written to the wire: tagged values become tagged maps, time.Time becomes a
// Date, ACL becomes its permission map, numbers become int64 or float64 and
// slices and string-keyed maps are normalized element by element. Values
// with no known mapping are returned as is.
func Normalize(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case Tagged:
		if isNilPointer(t) {
			return nil
		}
		return t.Encode()
	case ACL:
		return t.ToMap()
	case time.Time:
		return NewDate(t).Encode()
	case *time.Time:
		if t == nil {
			return nil
		}
		return NewDate(*t).Encode()
	case string, bool:
		return t
	case []byte:
		return t
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Normalize(e)
		}
		return out
	}

	if n, ok := normalizeNumber(v); ok {
		return n
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Normalize(iter.Value().Interface())
		}
		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return Normalize(rv.Elem().Interface())
	}
	return v
}

// Denormalize is the read side of Normalize: maps that match a tagged shape
// become typed values, json.Number becomes int64 or float64, and lists and
// maps are walked recursively.
func Denormalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if decoded, ok := DecodeTagged(t); ok {
			return decoded
		}
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Denormalize(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Denormalize(e)
		}
		return out
	case json.Number:
		if n, ok := normalizeNumber(t); ok {
			return n
		}
	}
	return v
}

// NormalizeNumbers replaces every json.Number in a decoded document with
// int64 or float64, leaving tagged maps as maps.
func NormalizeNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = NormalizeNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = NormalizeNumbers(e)
		}
		return t
	case json.Number:
		if n, ok := normalizeNumber(t); ok {
			return n
		}
	}
	return v
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// normalizeNumber maps any Go numeric kind or json.Number to int64 or float64.
func normalizeNumber(v any) (any, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		return n, true
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint:
		return uintNumber(uint64(n)), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintNumber(n), true
	case float32:
		return float64(n), true
	case json.Number:
		s := n.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := n.Int64(); err == nil {
				return i, true
			}
		}
		f, err := n.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	}
	return nil, false
}

// uintNumber keeps values above MaxInt64 as float64 instead of wrapping.
func uintNumber(n uint64) any {
	if n > math.MaxInt64 {
		return float64(n)
	}
	return int64(n)
}

func toFloat64(v any) (float64, bool) {
	n, ok := normalizeNumber(v)
	if !ok {
		return 0, false
	}
	switch t := n.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

func toInt64(v any) (int64, bool) {
	n, ok := normalizeNumber(v)
	if !ok {
		return 0, false
	}
	switch t := n.(type) {
	case int64:
		return t, true
	case float64:
		return int64(t), true
	}
	return 0, false
}

// ToInt64 converts a stored number to int64, truncating floats.
func ToInt64(v any) (int64, bool) {
	return toInt64(v)
}

// ToFloat64 converts a stored number to float64.
func ToFloat64(v any) (float64, bool) {
	return toFloat64(v)
}
