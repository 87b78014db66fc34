package utils

import (
    "fmt"
    "time"
)

// ClockLayout is the wall-clock format used for stop departures.
// Times carry no date, so a long route may wrap past midnight.
const ClockLayout = "15:04"

// ParseClock parses an "HH:MM" departure string.
func ParseClock(s string) (time.Time, error) {
    t, err := time.Parse(ClockLayout, s)
    if err != nil {
        return time.Time{}, fmt.Errorf("invalid clock time %q: %v", s, err)
    }
    return t, nil
}

// FormatClock renders a time as "HH:MM", dropping the date.
func FormatClock(t time.Time) string {
    return t.Format(ClockLayout)
}
