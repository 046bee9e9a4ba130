// Package timefmt provides the locale-free date and time helpers used by the
// page parsers. The server renders dates as "yyyy-MM-dd" and clock times and
// durations as "H:mm" regardless of the user's locale.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DatePattern is the server's date format.
	DatePattern = "2006-01-02"
	// TimePattern is the server's clock time format.
	TimePattern = "15:04"
)

// ParseDate parses a server-formatted date in the local time zone.
// It returns false for blank or malformed text.
func ParseDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(DatePattern, text, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// ParseTime parses a server-formatted clock time and resolves it against the
// given date. It returns nil for blank or malformed text.
func ParseTime(date time.Time, text string) *time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	parsed, err := time.ParseInLocation(TimePattern, text, time.Local)
	if err != nil {
		return nil
	}
	resolved := time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		time.Local,
	)
	return &resolved
}

// ParseDuration parses an "H:mm" elapsed-time text such as "37:15".
// Unlike ParseTime the hours are unbounded. It returns false for blank or
// malformed text.
func ParseDuration(text string) (time.Duration, bool) {
	text = strings.TrimSpace(text)
	hoursText, minutesText, found := strings.Cut(text, ":")
	if !found {
		return 0, false
	}
	hours, err := strconv.ParseInt(hoursText, 10, 64)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.ParseInt(minutesText, 10, 64)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, true
}

// FormatDate formats a date the way the server expects it.
func FormatDate(date time.Time) string {
	return date.Format(DatePattern)
}

// FormatTime formats a clock time the way the server expects it.
func FormatTime(t time.Time) string {
	return t.Format(TimePattern)
}

// FormatDuration formats an elapsed time as "H:mm".
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
