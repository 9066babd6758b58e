package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcr/golibro/internal/domain"
	"github.com/jcr/golibro/internal/infrastructure/metrics"
)

// JournalUseCase validates and records manually keyed entries.
type JournalUseCase struct {
	registry   *domain.Registry
	txManager  TransactionManager
	ledgerRepo LedgerRepository
	idGen      IDGenerator
	retrier    Retrier
	cache      Cache
	metrics    *metrics.Metrics
}

// NewJournalUseCase creates a new JournalUseCase. cache and m may be
// nil.
func NewJournalUseCase(
	registry *domain.Registry,
	txManager TransactionManager,
	ledgerRepo LedgerRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
	m *metrics.Metrics,
) *JournalUseCase {
	return &JournalUseCase{
		registry:   registry,
		txManager:  txManager,
		ledgerRepo: ledgerRepo,
		idGen:      idGen,
		retrier:    retrier,
		cache:      cache,
		metrics:    m,
	}
}

// ManualEntryInput is one user-keyed journal line.
type ManualEntryInput struct {
	Date        time.Time
	Description string
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Reference   string
}

// ValidateManual checks a single manual line and shapes it into a
// journal entry. Pure; nothing is written.
func (uc *JournalUseCase) ValidateManual(input ManualEntryInput) (*domain.JournalEntry, error) {
	if _, err := uc.registry.Lookup(input.AccountCode); err != nil {
		return nil, err
	}

	entry := &domain.JournalEntry{
		Date:        domain.NormalizeDate(input.Date),
		Description: input.Description,
		AccountCode: input.AccountCode,
		Debit:       input.Debit,
		Credit:      input.Credit,
		Kind:        domain.KindManual,
		Reference:   input.Reference,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// RecordManual validates a group of manual lines and appends them
// atomically as one posting. The group must balance; single unmatched
// lines are rejected so the stored ledger can never drift.
func (uc *JournalUseCase) RecordManual(ctx context.Context, origin string, inputs []ManualEntryInput) (*domain.Posting, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrEmptyPosting
	}

	entries := make([]domain.JournalEntry, 0, len(inputs))
	for _, input := range inputs {
		entry, err := uc.ValidateManual(input)
		if err != nil {
			uc.reject("validation")
			return nil, err
		}

		entry.Origin = origin
		entries = append(entries, *entry)
	}

	posting := &domain.Posting{
		Origin:  origin,
		Entries: entries,
	}

	if err := posting.Validate(); err != nil {
		uc.reject("validation")
		return nil, err
	}

	if err := appendPosting(ctx, uc.txManager, uc.ledgerRepo, uc.retrier, uc.idGen, posting); err != nil {
		return nil, err
	}

	bumpSummaryGeneration(ctx, uc.cache, posting.ID)

	if uc.metrics != nil {
		uc.metrics.PostingsCreated.WithLabelValues(origin).Inc()
		uc.metrics.EntriesWritten.Add(float64(len(posting.Entries)))
		uc.metrics.PostingAmount.Observe(posting.TotalDebit().InexactFloat64())
	}

	return posting, nil
}

func (uc *JournalUseCase) reject(reason string) {
	if uc.metrics != nil {
		uc.metrics.PostingRejections.WithLabelValues(reason).Inc()
	}
}
