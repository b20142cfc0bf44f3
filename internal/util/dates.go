package util

import "time"

const DateLayout = "2006-01-02"

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// ParseDay parses a YYYY-MM-DD challenge date in loc. The zero time is
// returned on malformed input so a bad date simply never matches "today".
func ParseDay(s string, loc *time.Location) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
