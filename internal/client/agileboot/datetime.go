package agileboot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DateTimeLayout is the layout the backend serializes dates with.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime is a time that decodes from "2006-01-02 15:04:05", RFC 3339 or epoch milliseconds.
// Local dates without a zone are interpreted in time.Local.
type DateTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] != '"' {
		millis, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidDateTime, data)
		}

		d.Time = time.UnixMilli(millis)

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw == "" {
		return nil
	}

	if parsed, err := time.ParseInLocation(DateTimeLayout, raw, time.Local); err == nil {
		d.Time = parsed

		return nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateTime, raw)
	}

	d.Time = parsed

	return nil
}

// MarshalJSON implements json.Marshaler using DateTimeLayout.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.Format(DateTimeLayout))
}

// String formats the date with DateTimeLayout.
func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Format(DateTimeLayout)
}
