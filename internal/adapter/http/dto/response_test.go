package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcr/golibro/internal/domain"
)

func TestEntryFromDomain(t *testing.T) {
	registry := domain.DefaultRegistry()
	entry := &domain.JournalEntry{
		ID:          "e1",
		PostingID:   "p1",
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "Venta S1 - Bodega Central",
		AccountCode: "121",
		Debit:       decimal.NewFromInt(118),
		Kind:        domain.KindAutomatic,
		Origin:      domain.OriginSale,
	}

	resp := EntryFromDomain(entry, registry)

	if resp.Date != "2025-03-01" {
		t.Fatalf("expected date 2025-03-01, got %s", resp.Date)
	}

	if resp.AccountLabel != "Cuentas por Cobrar" {
		t.Fatalf("expected label from registry, got %q", resp.AccountLabel)
	}

	if resp.Kind != "automatic" {
		t.Fatalf("expected automatic kind, got %s", resp.Kind)
	}
}

func TestEntryFromDomainNilRegistry(t *testing.T) {
	entry := &domain.JournalEntry{
		ID:          "e1",
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		AccountCode: "121",
	}

	resp := EntryFromDomain(entry, nil)

	if resp.AccountLabel != "" {
		t.Fatalf("expected empty label without registry, got %q", resp.AccountLabel)
	}
}

func TestPostingFromDomain(t *testing.T) {
	posting := &domain.Posting{
		ID:               "p1",
		Origin:           domain.OriginSale,
		SourceDocumentID: "S1",
		Entries: []domain.JournalEntry{
			{ID: "e1", AccountCode: "121", Debit: decimal.NewFromInt(118), Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "e2", AccountCode: "701", Credit: decimal.NewFromInt(100), Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "e3", AccountCode: "401", Credit: decimal.NewFromInt(18), Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	resp := PostingFromDomain(posting, domain.DefaultRegistry())

	if len(resp.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(resp.Entries))
	}

	if !resp.TotalDebit.Equal(decimal.NewFromInt(118)) || !resp.TotalCredit.Equal(decimal.NewFromInt(118)) {
		t.Fatalf("unexpected totals: debit=%s credit=%s", resp.TotalDebit, resp.TotalCredit)
	}
}

func TestAccountsFromDomain(t *testing.T) {
	accounts := AccountsFromDomain(domain.DefaultRegistry().All())

	if len(accounts) == 0 {
		t.Fatalf("expected accounts from default chart")
	}

	if accounts[0].Code == "" || accounts[0].Classification == "" {
		t.Fatalf("account fields not mapped: %+v", accounts[0])
	}
}
