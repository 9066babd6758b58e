package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Posting is the balanced group of entries produced by one trigger: a
// manual save, a sale, a purchase, or a reversal. It is the unit of
// atomicity; either every entry of a posting is stored or none is.
type Posting struct {
	ID               string
	Origin           string
	SourceDocumentID string
	CreatedAt        time.Time
	Entries          []JournalEntry
}

// TotalDebit sums the debit side.
func (p *Posting) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Entries {
		total = total.Add(p.Entries[i].Debit)
	}

	return total
}

// TotalCredit sums the credit side.
func (p *Posting) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Entries {
		total = total.Add(p.Entries[i].Credit)
	}

	return total
}

// Balanced reports whether sum(debit) equals sum(credit) exactly.
func (p *Posting) Balanced() bool {
	return p.TotalDebit().Equal(p.TotalCredit())
}

// Validate checks every entry and the balance invariant. A posting
// that fails here must never reach the store.
func (p *Posting) Validate() error {
	if len(p.Entries) == 0 {
		return ErrEmptyPosting
	}

	for i := range p.Entries {
		if err := p.Entries[i].Validate(); err != nil {
			return err
		}
	}

	if !p.Balanced() {
		return &ImbalancedPostingError{
			DocumentID:  p.SourceDocumentID,
			TotalDebit:  p.TotalDebit(),
			TotalCredit: p.TotalCredit(),
		}
	}

	return nil
}

// Reversal builds the offsetting posting for p: same accounts, debit
// and credit swapped, origin "reversa", source document set to the
// original posting id so a reversal cannot itself be posted twice.
func (p *Posting) Reversal(date time.Time, description string) *Posting {
	entries := make([]JournalEntry, len(p.Entries))
	for i, e := range p.Entries {
		entries[i] = JournalEntry{
			Date:             NormalizeDate(date),
			Description:      description,
			AccountCode:      e.AccountCode,
			Debit:            e.Credit,
			Credit:           e.Debit,
			Kind:             KindAutomatic,
			Origin:           OriginReversal,
			SourceDocumentID: p.ID,
			Reference:        e.Reference,
		}
	}

	return &Posting{
		Origin:           OriginReversal,
		SourceDocumentID: p.ID,
		Entries:          entries,
	}
}
