// Package response turns NCMB REST responses into field maps and API
// errors.
package response

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/buger/jsonparser"

	"github.com/ncmb/ncmb.go/internal/codec"
	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/models"
)

// Keys of list and count responses.
const (
	KeyResults = "results"
	KeyCount   = "count"
)

var unmarshaler codec.Unmarshaler = models.JSONUnmarshaler{}

// DecodeBody parses a response body as a JSON object. An empty body yields
// an empty map. Numbers come back as int64 or float64; tagged values stay
// as maps.
func DecodeBody(body []byte) (map[string]any, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return map[string]any{}, nil
	}

	_, dataType, _, err := jsonparser.Get(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrParse, err)
	}
	if dataType != jsonparser.Object {
		return nil, fmt.Errorf("%w: top-level value is %s", constants.ErrParse, dataType)
	}

	var m map[string]any
	if err := unmarshaler.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrParse, err)
	}
	models.NormalizeNumbers(m)
	return m, nil
}

// Decode checks status and decodes body. A status outside [200,299]
// returns an *APIError built from the body.
func Decode(status int, body []byte) (map[string]any, error) {
	if status < 200 || status > 299 {
		return nil, newAPIError(status, body)
	}
	return DecodeBody(body)
}

// FromHTTP reads and decodes resp, closing its body.
func FromHTTP(resp *http.Response) (map[string]any, error) {
	if resp == nil {
		return nil, constants.ErrInvalidResponse
	}

	var body []byte
	if resp.Body != nil {
		defer resp.Body.Close()
		var err error
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", constants.ErrInvalidResponse, err)
		}
	}
	return Decode(resp.StatusCode, body)
}

// Results returns the objects of a search response.
func Results(m map[string]any) []map[string]any {
	list, _ := m[KeyResults].([]any)
	out := make([]map[string]any, 0, len(list))
	for _, e := range list {
		if obj, ok := e.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

// Count returns the count of a count query response.
func Count(m map[string]any) (int64, bool) {
	v, ok := m[KeyCount]
	if !ok {
		return 0, false
	}
	return models.ToInt64(v)
}
