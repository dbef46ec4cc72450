package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// DateLayout is the ISO-8601 form used for dates on the wire and in the
// X-NCMB-Timestamp header. It is always UTC with millisecond precision.
const DateLayout = "2006-01-02T15:04:05.000Z"

// Date is a point in time with millisecond precision.
type Date struct {
	time.Time
}

// NewDate truncates t to milliseconds and moves it to UTC.
func NewDate(t time.Time) Date {
	return Date{Time: t.UTC().Truncate(time.Millisecond)}
}

// ParseDate parses the wire form of a date.
func ParseDate(iso string) (Date, error) {
	t, err := time.Parse(DateLayout, iso)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", iso, err)
	}
	return Date{Time: t}, nil
}

func (d Date) Tag() Tag {
	return TagDate
}

func (d Date) Encode() map[string]any {
	return map[string]any{
		KeyType: string(TagDate),
		KeyISO:  d.String(),
	}
}

func (d Date) String() string {
	return d.UTC().Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Encode())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	v, err := unmarshalTagged(data, TagDate)
	if err != nil {
		return err
	}
	*d = v.(Date)
	return nil
}

func decodeDate(m map[string]any) (any, bool) {
	if !hasDiscriminator(m, KeyType, TagDate) {
		return nil, false
	}
	iso, ok := m[KeyISO].(string)
	if !ok {
		return nil, false
	}
	d, err := ParseDate(iso)
	if err != nil {
		return nil, false
	}
	return d, true
}
