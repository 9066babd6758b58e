package usecase

import (
	"context"
	"errors"
)

var (
	// ErrInconsistentLedger is returned when the ledger is not balanced.
	ErrInconsistentLedger = errors.New("ledger is inconsistent: debits do not equal credits")
)

// LedgerUseCase handles ledger-wide operations.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// CheckConsistency verifies that the ledger is balanced. Every posting
// is balanced on entry, so the global sums can only diverge if the
// store itself was corrupted.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	totalDebit, totalCredit, err := uc.ledgerRepo.Totals(ctx)
	if err != nil {
		return false, err
	}

	if !totalDebit.Equal(totalCredit) {
		return false, ErrInconsistentLedger
	}

	return true, nil
}
