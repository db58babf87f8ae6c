package utils

import "time"

// India time (IST, +05:30), the reference zone for all user-facing dates.
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsIST converts an epoch value in seconds to IST. Returns the
// zero time for t<=0 so callers decide how to render missing values.
func FromUnixSecondsIST(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(istLoc)
}

func FormatRFC3339IST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(istLoc).Format(time.RFC3339)
}

// FormatMonthYearIST renders "January 2006" style member-since strings.
func FormatMonthYearIST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(istLoc).Format("January 2006")
}
