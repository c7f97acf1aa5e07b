package analytics

import (
	"time"
)

// Named reporting periods accepted by ResolvePeriod.
const (
	PeriodToday  = "today"
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodYear   = "year"
	PeriodCustom = "custom"
)

// Period is an inclusive [Start, End] reporting window.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// ResolvePeriod turns a symbolic period name into a concrete window relative
// to the given reference instant. The reference instant is always explicit so
// callers (and tests) control "now".
//
// "custom" uses the explicit bounds verbatim when both are present; otherwise
// it falls back to the current month, as does any unrecognized name.
func ResolvePeriod(name string, now time.Time, start, end *time.Time) Period {
	switch name {
	case PeriodToday:
		return Period{Start: startOfDay(now), End: endOfDay(now)}
	case PeriodWeek:
		monday := startOfDay(now.AddDate(0, 0, -mondayOffset(now)))
		return Period{Start: monday, End: endOfDay(monday.AddDate(0, 0, 6))}
	case PeriodYear:
		jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		dec31 := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
		return Period{Start: jan1, End: endOfDay(dec31)}
	case PeriodCustom:
		if start != nil && end != nil {
			return Period{Start: *start, End: *end}
		}
		return currentMonth(now)
	case PeriodMonth:
		return currentMonth(now)
	default:
		return currentMonth(now)
	}
}

// PreviousPeriod returns the window of equal whole-day duration ending the
// day before p.Start. Duration uses half-open day counting so a calendar
// month is always compared against the equally sized window immediately
// preceding it.
func PreviousPeriod(p Period) Period {
	days := int(p.End.Sub(p.Start).Hours() / 24)
	prevEnd := startOfDay(p.Start).AddDate(0, 0, -1)
	prevStart := startOfDay(p.Start).AddDate(0, 0, -(days + 1))
	return Period{Start: prevStart, End: endOfDay(prevEnd)}
}

func currentMonth(now time.Time) Period {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return Period{Start: first, End: endOfDay(last)}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// mondayOffset returns days elapsed since the most recent Monday.
func mondayOffset(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}
