package domain

import (
	"fmt"
	"strings"
	"time"
)

// EntryFilter narrows a ledger read. Zero values mean "no bound"; the
// text query is a case-insensitive substring match against the entry
// description, account code or label, and reference.
type EntryFilter struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	TextQuery string
}

// MatchesText reports whether the entry matches the text query. The
// account label comes from the registry, not from the stored row.
func (f EntryFilter) MatchesText(e *JournalEntry, accountLabel string) bool {
	if f.TextQuery == "" {
		return true
	}

	q := strings.ToLower(f.TextQuery)

	return strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.AccountCode), q) ||
		strings.Contains(strings.ToLower(accountLabel), q) ||
		strings.Contains(strings.ToLower(e.Reference), q)
}

// Period is a predefined reporting range resolved against an explicit
// reference date. The engine never reads the wall clock itself.
type Period string

const (
	PeriodAll       Period = "all"
	PeriodThisMonth Period = "month"
	PeriodThisYear  Period = "year"
)

// Filter resolves the period to calendar bounds around ref.
func (p Period) Filter(ref time.Time) EntryFilter {
	switch p {
	case PeriodThisMonth:
		from := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)

		return EntryFilter{DateFrom: &from, DateTo: &to}
	case PeriodThisYear:
		from := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

		return EntryFilter{DateFrom: &from, DateTo: &to}
	default:
		return EntryFilter{}
	}
}

// ParsePeriod maps a wire value to a Period. The empty string means
// PeriodAll; any other unknown value is rejected.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(s)) {
	case "", PeriodAll:
		return PeriodAll, nil
	case PeriodThisMonth:
		return PeriodThisMonth, nil
	case PeriodThisYear:
		return PeriodThisYear, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
}
