package request

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/models"
)

// EncodeQuery renders queries as a query string with keys in byte order.
// Strings are used as is, integers in decimal and any other value as JSON.
// A nil value emits the key alone. Spaces become %20 and "+" becomes %2B.
func EncodeQuery(queries map[string]any) (string, error) {
	if len(queries) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(queries))
	for k := range queries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := queries[k]
		if v == nil {
			parts = append(parts, escape(k))
			continue
		}
		s, err := queryValue(v)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", constants.ErrEncodeQuery, k, err)
		}
		parts = append(parts, escape(k)+"="+escape(s))
	}
	return strings.Join(parts, "&"), nil
}

func queryValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, _ := models.ToInt64(t)
		return strconv.FormatInt(n, 10), nil
	}
	data, err := models.MarshalValue(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// escape applies query escaping and writes spaces as %20. url.QueryEscape
// already turns "+" into %2B, so no literal "+" survives.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
