package repositories

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Deadline dates arrive in two shapes depending on who maintained the
// sheet: "DD-mon-YY" with Spanish month abbreviations, or plain ISO
// "YYYY-MM-DD".
//
//nolint:gochecknoglobals //fixed lookup table
var spanishMonths = map[string]time.Month{
	"ene": time.January,
	"feb": time.February,
	"mar": time.March,
	"abr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dic": time.December,
}

type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse deadline date %q: %s", e.Raw, e.Reason)
}

// ParseDeadlineDate normalizes a raw date string to a calendar date at
// midnight UTC. Two-digit years always mean 2000+YY.
func ParseDeadlineDate(raw string) (time.Time, error) {
	if date, err := time.ParseInLocation("2006-01-02", raw, time.UTC); err == nil {
		return date, nil
	}

	parts := strings.Split(raw, "-")
	//nolint:mnd //DD-mon-YY has three parts
	if len(parts) != 3 {
		return time.Time{}, &ParseError{Raw: raw, Reason: "expected DD-mon-YY"}
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, &ParseError{Raw: raw, Reason: "invalid day"}
	}

	month, ok := spanishMonths[strings.ToLower(parts[1])]
	if !ok {
		return time.Time{}, &ParseError{
			Raw:    raw,
			Reason: fmt.Sprintf("unknown month abbreviation %q", parts[1]),
		}
	}

	yy, err := strconv.Atoi(parts[2])
	if err != nil || yy < 0 || yy > 99 {
		return time.Time{}, &ParseError{Raw: raw, Reason: "invalid two-digit year"}
	}

	date := time.Date(2000+yy, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. 31-abr becomes 01-may), which
	// would silently accept impossible calendar dates.
	if date.Day() != day || date.Month() != month {
		return time.Time{}, &ParseError{
			Raw:    raw,
			Reason: fmt.Sprintf("day %d does not exist in month %q", day, parts[1]),
		}
	}

	return date, nil
}
