package postgres

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/jcr/golibro/internal/domain"
)

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var (
		e         domain.JournalEntry
		date      pgtype.Date
		debit     pgtype.Numeric
		credit    pgtype.Numeric
		kind      string
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&e.ID,
		&e.PostingID,
		&date,
		&e.Description,
		&e.AccountCode,
		&debit,
		&credit,
		&kind,
		&e.Origin,
		&e.SourceDocumentID,
		&e.Reference,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	e.Date = domain.NormalizeDate(date.Time)
	e.Debit = numericToDecimal(debit)
	e.Credit = numericToDecimal(credit)
	e.Kind = domain.EntryKind(kind)
	e.CreatedAt = createdAt.Time

	return &e, nil
}
