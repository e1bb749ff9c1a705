package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar date in request bodies. It accepts YYYY-MM-DD and RFC 3339.
type Date struct {
	time.Time
}

func NewDate(t time.Time) *Date {
	return &Date{Time: DateOnly(t)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string

	err := json.Unmarshal(b, &s)
	if err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	t, err := ParseDate(s)
	if err != nil {
		return err
	}

	d.Time = t

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}

	return t, nil
}

func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}

	t := DateOnly(d.Time)

	return &t
}
