package usecase

import (
	"context"
	"time"

	"github.com/jcr/golibro/internal/domain"
)

// appendPosting assigns ids, then flushes the posting inside a single
// transaction so readers never observe a partial posting. The retrier
// only re-runs on transient storage failures; a duplicate-posting
// violation is permanent and surfaces unchanged.
func appendPosting(
	ctx context.Context,
	txManager TransactionManager,
	ledgerRepo LedgerRepository,
	retrier Retrier,
	idGen IDGenerator,
	posting *domain.Posting,
) error {
	now := time.Now().UTC()

	posting.ID = idGen.Generate()
	posting.CreatedAt = now

	for i := range posting.Entries {
		posting.Entries[i].ID = idGen.Generate()
		posting.Entries[i].PostingID = posting.ID
		posting.Entries[i].CreatedAt = now
	}

	operation := func() error {
		tx, err := txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := ledgerRepo.AppendPosting(ctx, tx, posting); err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	if retrier == nil {
		return operation()
	}

	return retrier.Retry(ctx, operation)
}
