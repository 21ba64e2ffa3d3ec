package utils

import (
	"time"

	"gorm.io/datatypes"
)

// Accepted input layouts, tried in order; the first match wins.
var dateLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"2006-01-02",
	"2006/01/02",
}

// ParseDate parses a date string in one of the four accepted layouts,
// falling back to RFC 3339 for full timestamps. Parsing is strict: an
// overflowing day such as 30-02-2024 is rejected.
func ParseDate(input string) (datatypes.Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return datatypes.Date(t), nil
		}
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return Day(t), nil
	}
	return datatypes.Date{}, &DateFormatError{Value: input}
}

// ParseDateRange parses a check-in/check-out pair and enforces strict
// ordering (check-in before check-out).
func ParseDateRange(checkIn, checkOut string) (datatypes.Date, datatypes.Date, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return datatypes.Date{}, datatypes.Date{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return datatypes.Date{}, datatypes.Date{}, err
	}
	if !DateBefore(in, out) {
		return datatypes.Date{}, datatypes.Date{}, &DateOrderError{Message: "Check-in date must be before check-out date!"}
	}
	return in, out, nil
}

// Day truncates a timestamp to its calendar date.
func Day(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

func dateUTC(d datatypes.Date) time.Time {
	t := time.Time(d)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b, negative when
// b precedes a. Half-open by construction: DaysBetween(d, d) == 0.
func DaysBetween(a, b datatypes.Date) int64 {
	return int64(dateUTC(b).Sub(dateUTC(a)).Hours() / 24)
}

func DateBefore(a, b datatypes.Date) bool { return dateUTC(a).Before(dateUTC(b)) }

func DateAfter(a, b datatypes.Date) bool { return dateUTC(a).After(dateUTC(b)) }

func DateEqual(a, b datatypes.Date) bool { return dateUTC(a).Equal(dateUTC(b)) }

// FormatDate renders a date in the ISO layout used by all responses.
func FormatDate(d datatypes.Date) string {
	return dateUTC(d).Format("2006-01-02")
}

func FormatDatePtr(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return FormatDate(*d)
}
