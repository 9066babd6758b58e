package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcr/golibro/internal/domain"
	"github.com/jcr/golibro/internal/infrastructure/metrics"
)

var zero = decimal.Zero

// Rules maps the generator's fixed rule table to chart codes, so a
// deployment can re-map accounts without touching the rules themselves.
type Rules struct {
	Receivable string // debited by sales
	Revenue    string // credited by sales
	TaxPayable string // credited by sale tax
	Inventory  string // debited by purchases
	TaxCredit  string // debited by purchase tax
	Payable    string // credited by purchases
}

// DefaultRules returns the rule table over the default chart.
func DefaultRules() Rules {
	return Rules{
		Receivable: "121",
		Revenue:    "701",
		TaxPayable: "401",
		Inventory:  "201",
		TaxCredit:  "167",
		Payable:    "421",
	}
}

// PostingUseCase derives balanced postings from sale and purchase
// events and appends them exactly once per source document.
type PostingUseCase struct {
	registry   *domain.Registry
	txManager  TransactionManager
	ledgerRepo LedgerRepository
	idGen      IDGenerator
	retrier    Retrier
	cache      Cache
	metrics    *metrics.Metrics
	rules      Rules
}

// NewPostingUseCase creates a new PostingUseCase. cache and m may be
// nil.
func NewPostingUseCase(
	registry *domain.Registry,
	txManager TransactionManager,
	ledgerRepo LedgerRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
	m *metrics.Metrics,
	rules Rules,
) *PostingUseCase {
	return &PostingUseCase{
		registry:   registry,
		txManager:  txManager,
		ledgerRepo: ledgerRepo,
		idGen:      idGen,
		retrier:    retrier,
		cache:      cache,
		metrics:    m,
		rules:      rules,
	}
}

// FromSale posts a completed sale: debit receivables for the total,
// credit revenue for the subtotal, credit tax payable for the tax.
func (uc *PostingUseCase) FromSale(ctx context.Context, sale *domain.Sale) (*domain.Posting, error) {
	if sale.ID == "" {
		uc.reject("missing_document")
		return nil, domain.ErrMissingDocumentID
	}

	if err := checkDocumentAmounts(sale.ID, sale.Total, sale.Tax); err != nil {
		uc.reject("imbalanced")
		return nil, err
	}

	description := fmt.Sprintf("Venta %s", sale.ID)
	if sale.CustomerName != "" {
		description = fmt.Sprintf("Venta %s - %s", sale.ID, sale.CustomerName)
	}

	entries := []domain.JournalEntry{
		uc.entry(sale.Date, description, uc.rules.Receivable, sale.Total, zero, domain.OriginSale, sale.ID),
		uc.entry(sale.Date, description, uc.rules.Revenue, zero, sale.Subtotal(), domain.OriginSale, sale.ID),
	}

	if sale.Tax.IsPositive() {
		entries = append(entries,
			uc.entry(sale.Date, description, uc.rules.TaxPayable, zero, sale.Tax, domain.OriginSale, sale.ID))
	}

	return uc.post(ctx, domain.OriginSale, sale.ID, entries)
}

// FromPurchase posts a completed purchase: debit inventory for the
// subtotal, debit tax credit for the tax, credit payables for the total.
func (uc *PostingUseCase) FromPurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Posting, error) {
	if purchase.ID == "" {
		uc.reject("missing_document")
		return nil, domain.ErrMissingDocumentID
	}

	if err := checkDocumentAmounts(purchase.ID, purchase.Total, purchase.Tax); err != nil {
		uc.reject("imbalanced")
		return nil, err
	}

	description := fmt.Sprintf("Compra %s", purchase.ID)
	if purchase.SupplierName != "" {
		description = fmt.Sprintf("Compra %s - %s", purchase.ID, purchase.SupplierName)
	}

	entries := []domain.JournalEntry{
		uc.entry(purchase.Date, description, uc.rules.Inventory, purchase.Subtotal(), zero, domain.OriginPurchase, purchase.ID),
	}

	if purchase.Tax.IsPositive() {
		entries = append(entries,
			uc.entry(purchase.Date, description, uc.rules.TaxCredit, purchase.Tax, zero, domain.OriginPurchase, purchase.ID))
	}

	entries = append(entries,
		uc.entry(purchase.Date, description, uc.rules.Payable, zero, purchase.Total, domain.OriginPurchase, purchase.ID))

	return uc.post(ctx, domain.OriginPurchase, purchase.ID, entries)
}

// GetPosting retrieves a posting with its entries.
func (uc *PostingUseCase) GetPosting(ctx context.Context, postingID string) (*domain.Posting, error) {
	return uc.ledgerRepo.GetPosting(ctx, postingID)
}

// ReversePosting appends the offsetting posting for an existing one.
// The reversal references the original posting as its source document,
// so reversing twice fails with domain.ErrDuplicatePosting.
func (uc *PostingUseCase) ReversePosting(ctx context.Context, postingID string, date time.Time, description string) (*domain.Posting, error) {
	original, err := uc.ledgerRepo.GetPosting(ctx, postingID)
	if err != nil {
		return nil, err
	}

	reversal := original.Reversal(date, description)
	if description == "" {
		for i := range reversal.Entries {
			reversal.Entries[i].Description = fmt.Sprintf("Extorno de asiento %s", postingID)
		}
	}

	return uc.post(ctx, domain.OriginReversal, postingID, reversal.Entries)
}

func (uc *PostingUseCase) post(ctx context.Context, origin, sourceDocumentID string, entries []domain.JournalEntry) (*domain.Posting, error) {
	posting := &domain.Posting{
		Origin:           origin,
		SourceDocumentID: sourceDocumentID,
		Entries:          entries,
	}

	if err := posting.Validate(); err != nil {
		uc.reject("validation")
		return nil, err
	}

	// The rule table is deployment configuration, so a remapped account
	// may not exist in the chart. Reject the posting before it is stored.
	for i := range posting.Entries {
		if _, err := uc.registry.Lookup(posting.Entries[i].AccountCode); err != nil {
			uc.reject("unknown_account")
			return nil, err
		}
	}

	// Fast path for the common retry; the unique index on
	// (origin, source_document_id) closes the remaining race.
	exists, err := uc.ledgerRepo.HasPostingFor(ctx, origin, sourceDocumentID)
	if err != nil {
		return nil, err
	}

	if exists {
		uc.duplicate(origin)
		return nil, domain.ErrDuplicatePosting
	}

	if err := appendPosting(ctx, uc.txManager, uc.ledgerRepo, uc.retrier, uc.idGen, posting); err != nil {
		if errors.Is(err, domain.ErrDuplicatePosting) {
			uc.duplicate(origin)
		}
		return nil, err
	}

	bumpSummaryGeneration(ctx, uc.cache, posting.ID)

	if uc.metrics != nil {
		uc.metrics.PostingsCreated.WithLabelValues(origin).Inc()
		uc.metrics.EntriesWritten.Add(float64(len(posting.Entries)))
		uc.metrics.PostingAmount.Observe(posting.TotalDebit().InexactFloat64())
		if origin == domain.OriginReversal {
			uc.metrics.PostingsReversed.Inc()
		}
	}

	return posting, nil
}

func (uc *PostingUseCase) reject(reason string) {
	if uc.metrics != nil {
		uc.metrics.PostingRejections.WithLabelValues(reason).Inc()
	}
}

func (uc *PostingUseCase) duplicate(origin string) {
	if uc.metrics != nil {
		uc.metrics.PostingDuplicates.WithLabelValues(origin).Inc()
	}
}

func (uc *PostingUseCase) entry(date time.Time, description, accountCode string, debit, credit decimal.Decimal, origin, sourceDocumentID string) domain.JournalEntry {
	return domain.JournalEntry{
		Date:             domain.NormalizeDate(date),
		Description:      description,
		AccountCode:      accountCode,
		Debit:            debit,
		Credit:           credit,
		Kind:             domain.KindAutomatic,
		Origin:           origin,
		SourceDocumentID: sourceDocumentID,
		Reference:        sourceDocumentID,
	}
}

// checkDocumentAmounts rejects source documents that cannot produce a
// balanced posting before any entry is built.
func checkDocumentAmounts(documentID string, total, tax decimal.Decimal) error {
	if total.IsNegative() || tax.IsNegative() || tax.GreaterThan(total) {
		return &domain.ImbalancedPostingError{
			DocumentID:  documentID,
			TotalDebit:  total,
			TotalCredit: tax,
		}
	}

	return nil
}
