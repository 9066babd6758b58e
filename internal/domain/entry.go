package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind tells whether an entry was keyed in by a user or derived
// from a sale/purchase event.
type EntryKind string

const (
	KindManual    EntryKind = "manual"
	KindAutomatic EntryKind = "automatic"
)

// Well-known origins. Origin is free text on the wire; these are the
// values the engine itself produces.
const (
	OriginSale     = "venta"
	OriginPurchase = "compra"
	OriginReversal = "reversa"
)

// JournalEntry is a single debit or credit line against one account.
// Entries are immutable once stored; corrections are new offsetting
// postings, never edits.
type JournalEntry struct {
	ID               string
	PostingID        string
	Date             time.Time
	Description      string
	AccountCode      string
	Debit            decimal.Decimal
	Credit           decimal.Decimal
	Kind             EntryKind
	Origin           string
	SourceDocumentID string
	Reference        string
	CreatedAt        time.Time
}

// Validate enforces the single-side invariant: exactly one of
// debit/credit is strictly positive and the other is exactly zero.
func (e *JournalEntry) Validate() error {
	if e.Debit.IsNegative() || e.Credit.IsNegative() {
		return ErrNegativeAmount
	}

	debitSet := e.Debit.IsPositive()
	creditSet := e.Credit.IsPositive()

	switch {
	case debitSet && creditSet:
		return ErrBothSidesSet
	case !debitSet && !creditSet:
		return ErrNoSideSet
	}

	if e.Description == "" {
		return ErrEmptyDescription
	}

	if e.Date.IsZero() {
		return ErrInvalidDate
	}

	return nil
}

// DateOnly is the wire format for entry dates.
const DateOnly = "2006-01-02"

// NormalizeDate strips the time component, leaving a UTC calendar date.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateOnly, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}
