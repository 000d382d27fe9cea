package timeutil

import "time"

// DateLayout is the compact date format upstream scoreboards filter on (YYYYMMDD).
const DateLayout = "20060102"

// ParseDate parses a YYYYMMDD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYYMMDD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Yesterday returns the YYYYMMDD date one calendar day before now in loc.
// A nil loc uses now's own location.
func Yesterday(now time.Time, loc *time.Location) string {
	if loc != nil {
		now = now.In(loc)
	}
	return FormatDate(now.AddDate(0, 0, -1))
}

// EpochMillis returns t as milliseconds since the Unix epoch.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// ResolveLocation loads a timezone by name, falling back to UTC when it is empty or unknown.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
