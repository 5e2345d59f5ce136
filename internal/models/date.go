package models

import (
	"fmt"
	"time"
)

// DateLayoutISO is the canonical on-the-wire date format (YYYY-MM-DD).
const DateLayoutISO = "2006-01-02"

// Date is a calendar date without a time component. All chronological
// ordering in the pipeline is defined on this type.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// String returns the date in ISO format.
func (d Date) String() string {
	return d.Format(DateLayoutISO)
}

// Compare returns -1 if d is before other, 0 if equal, 1 if after.
func (d Date) Compare(other Date) int {
	if d.Before(other.Time) {
		return -1
	}
	if d.After(other.Time) {
		return 1
	}
	return 0
}

// MarshalJSON encodes the date as a quoted ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayoutISO) + `"`), nil
}

// UnmarshalJSON decodes a quoted ISO date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date value: %s", s)
	}
	t, err := time.Parse(DateLayoutISO, s[1:len(s)-1])
	if err != nil {
		return err
	}
	*d = DateOf(t)
	return nil
}
