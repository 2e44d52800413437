package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// DateTime is a request timestamp that also accepts a bare YYYY-MM-DD date,
// read as midnight UTC of that day. It is written back as RFC 3339.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (d *DateTime) UnmarshalText(text []byte) error {
	s := string(text)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("%q is neither an RFC 3339 date-time nor a YYYY-MM-DD date", s)
	}
	d.Time = t
	return nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

func (d DateTime) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:        huma.TypeString,
		Description: "RFC 3339 date-time, or a YYYY-MM-DD date read as midnight UTC",
		Examples:    []any{"2030-05-01", "2030-05-01T14:00:00Z"},
	}
}
