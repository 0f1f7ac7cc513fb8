package format

import (
	"strings"
	"time"
)

// Present is the end label of an ongoing range.
const Present = "Present"

var monthLayouts = []string{"2006-01", "2006-01-02", "2006/01"}

// FormatDateRange renders two "YYYY-MM" tokens as "Jan 2006 - Jun 2006".
// isCurrent replaces any end value with Present. A side that does not parse
// is dropped; no start means "".
func FormatDateRange(start, end string, isCurrent bool) string {
	from := FormatMonth(start)
	to := ""
	if isCurrent {
		to = Present
	} else {
		to = FormatMonth(end)
	}
	switch {
	case from != "" && to != "":
		return from + " - " + to
	case from != "":
		return from
	}
	return ""
}

// FormatMonth renders one "YYYY-MM" token as "Jan 2006", or "" when it does
// not parse. The day is pinned to the 2nd so no zone shift can move the month.
func FormatMonth(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			t = time.Date(t.Year(), t.Month(), 2, 0, 0, 0, 0, time.UTC)
			return t.Format("Jan 2006")
		}
	}
	return ""
}
