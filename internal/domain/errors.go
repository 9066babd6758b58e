package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// Registry errors
	ErrAccountNotFound = errors.New("account code not found in registry")

	// Entry validation errors
	ErrEmptyDescription = errors.New("description must not be empty")
	ErrNegativeAmount   = errors.New("debit and credit must be non-negative")
	ErrBothSidesSet     = errors.New("entry cannot carry both a debit and a credit")
	ErrNoSideSet        = errors.New("entry must carry either a debit or a credit")
	ErrInvalidDate      = errors.New("invalid calendar date")

	// Posting errors
	ErrEmptyPosting      = errors.New("posting has no entries")
	ErrMissingDocumentID = errors.New("source document has no id")
	ErrDuplicatePosting  = errors.New("posting already exists for source document")
	ErrPostingNotFound   = errors.New("posting not found")

	// Reporting errors
	ErrInvalidPeriod = errors.New("unknown reporting period")
)

// ImbalancedPostingError reports a posting whose debit and credit
// totals do not match. It names the offending source document so the
// caller can point back at the sale or purchase that produced it.
type ImbalancedPostingError struct {
	DocumentID  string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *ImbalancedPostingError) Error() string {
	if e.DocumentID == "" {
		return fmt.Sprintf("imbalanced posting: debit=%s credit=%s",
			e.TotalDebit.String(), e.TotalCredit.String())
	}

	return fmt.Sprintf("imbalanced posting for document %s: debit=%s credit=%s",
		e.DocumentID, e.TotalDebit.String(), e.TotalCredit.String())
}

// IsValidation reports whether err belongs to the recoverable
// validation class (bad manual input or unknown account), as opposed to
// storage failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrBothSidesSet) ||
		errors.Is(err, ErrNoSideSet) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrEmptyPosting) ||
		errors.Is(err, ErrInvalidPeriod)
}
