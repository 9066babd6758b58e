package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jcr/golibro/internal/domain"
	"github.com/jcr/golibro/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// LedgerRepository implements usecase.LedgerRepository over the
// postings and journal_entries tables. Both are append-only; there is
// no update or delete path.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

const insertPostingSQL = `
	INSERT INTO postings (id, origin, source_document_id, created_at)
	VALUES ($1, $2, NULLIF($3, ''), $4)`

const insertEntrySQL = `
	INSERT INTO journal_entries (
		id, posting_id, entry_date, description, account_code,
		debit, credit, kind, origin, source_document_id, reference, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12)`

// AppendPosting stores the posting row and every entry inside tx. The
// partial unique index on postings (origin, source_document_id) turns
// a concurrent double-post into a unique violation, which is mapped to
// domain.ErrDuplicatePosting.
func (r *LedgerRepository) AppendPosting(ctx context.Context, tx usecase.Transaction, posting *domain.Posting) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertPostingSQL,
		posting.ID,
		posting.Origin,
		posting.SourceDocumentID,
		timeToPgTimestamptz(posting.CreatedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicatePosting
		}

		return err
	}

	batch := &pgx.Batch{}
	for i := range posting.Entries {
		e := &posting.Entries[i]
		batch.Queue(insertEntrySQL,
			e.ID,
			e.PostingID,
			e.Date,
			e.Description,
			e.AccountCode,
			decimalToNumeric(e.Debit),
			decimalToNumeric(e.Credit),
			string(e.Kind),
			e.Origin,
			e.SourceDocumentID,
			e.Reference,
			timeToPgTimestamptz(e.CreatedAt),
		)
	}

	results := pgxTx.SendBatch(ctx, batch)
	defer results.Close()

	for range posting.Entries {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return nil
}

// GetPosting retrieves a posting with its entries in insertion order.
func (r *LedgerRepository) GetPosting(ctx context.Context, id string) (*domain.Posting, error) {
	posting := &domain.Posting{ID: id}

	var createdAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, `
		SELECT origin, COALESCE(source_document_id, ''), created_at
		FROM postings
		WHERE id = $1`, id).Scan(&posting.Origin, &posting.SourceDocumentID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPostingNotFound
		}

		return nil, err
	}
	posting.CreatedAt = createdAt.Time

	rows, err := r.pool.Query(ctx, `
		SELECT id, posting_id, entry_date, description, account_code,
		       debit, credit, kind, origin, COALESCE(source_document_id, ''), reference, created_at
		FROM journal_entries
		WHERE posting_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		posting.Entries = append(posting.Entries, *e)
	}

	return posting, nil
}

// ListEntries returns entries inside the inclusive date range, ordered
// by date then id. Entry ids are ULIDs, so id order is insertion order.
func (r *LedgerRepository) ListEntries(ctx context.Context, dateFrom, dateTo *time.Time) ([]*domain.JournalEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, posting_id, entry_date, description, account_code,
		       debit, credit, kind, origin, COALESCE(source_document_id, ''), reference, created_at
		FROM journal_entries
		WHERE ($1::date IS NULL OR entry_date >= $1)
		  AND ($2::date IS NULL OR entry_date <= $2)
		ORDER BY entry_date, id`, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// HasPostingFor reports whether a posting for the source document is
// already recorded.
func (r *LedgerRepository) HasPostingFor(ctx context.Context, origin, sourceDocumentID string) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM postings
			WHERE origin = $1 AND source_document_id = $2
		)`, origin, sourceDocumentID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Totals returns the ledger-wide debit and credit sums.
func (r *LedgerRepository) Totals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	var debit, credit pgtype.Numeric

	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
		FROM journal_entries`).Scan(&debit, &credit)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(debit), numericToDecimal(credit), nil
}

func scanEntries(rows pgx.Rows) ([]*domain.JournalEntry, error) {
	var entries []*domain.JournalEntry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
