package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcr/golibro/internal/domain"
)

// LedgerRepository defines data access for the append-only journal.
type LedgerRepository interface {
	// AppendPosting stores every entry of the posting inside tx. The
	// store enforces uniqueness of (origin, source_document_id) and
	// surfaces a violation as domain.ErrDuplicatePosting.
	AppendPosting(ctx context.Context, tx Transaction, posting *domain.Posting) error
	GetPosting(ctx context.Context, id string) (*domain.Posting, error)
	// ListEntries returns entries inside the inclusive date range,
	// ordered by date ascending then insertion order. Nil bounds mean
	// unbounded.
	ListEntries(ctx context.Context, dateFrom, dateTo *time.Time) ([]*domain.JournalEntry, error)
	HasPostingFor(ctx context.Context, origin, sourceDocumentID string) (bool, error)
	// Totals returns the ledger-wide debit and credit sums.
	Totals(ctx context.Context) (totalDebit, totalCredit decimal.Decimal, err error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations for computed summaries.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage for the HTTP layer.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
