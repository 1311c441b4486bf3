package timecalc

import (
	"fmt"
	"time"
)

// DateTimeLayout is the wire format for work-hour timestamps.
const DateTimeLayout = "2006-01-02 15:04:05"

// MonthLayout is the wire format for month filters, e.g. "2024-06".
const MonthLayout = "2006-01"

// ParseDateTime parses a "2006-01-02 15:04:05" string in the given IANA
// zone. An empty zone means UTC.
func ParseDateTime(s, tz string) (time.Time, error) {
	loc := time.UTC
	if tz != "" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, fmt.Errorf("unknown timezone %q: %w", tz, err)
		}
	}
	t, err := time.ParseInLocation(DateTimeLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date time %q: %w", s, err)
	}
	return t, nil
}

// ParseMonth parses a "2006-01" month string.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return t, nil
}

// ElapsedMinutes returns the whole minutes between start and end,
// truncated toward zero.
func ElapsedMinutes(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}

// FormatMinutes formats a minute count as "02h15min". Minutes are always
// two digits; hours are padded to two digits but never truncated.
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	return fmt.Sprintf("%02dh%02dmin", h, m)
}
