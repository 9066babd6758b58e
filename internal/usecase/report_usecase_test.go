package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcr/golibro/internal/domain"
	"github.com/jcr/golibro/internal/usecase"
	"github.com/jcr/golibro/internal/usecase/mocks"
)

// seedMarch posts one taxed sale and one taxed purchase in March 2025
// plus one sale in April, and returns the shared repository.
func seedMarch(t *testing.T) *mocks.MockLedgerRepository {
	t.Helper()

	repo := mocks.NewMockLedgerRepository()
	uc := newPostingUseCase(repo)

	ctx := context.Background()

	if _, err := uc.FromSale(ctx, &domain.Sale{
		ID:           "S1",
		Date:         mustDate(t, "2025-03-01"),
		CustomerName: "Bodega Central",
		Total:        decimal.RequireFromString("118.00"),
		Tax:          decimal.RequireFromString("18.00"),
	}); err != nil {
		t.Fatalf("seed sale: %v", err)
	}

	if _, err := uc.FromPurchase(ctx, &domain.Purchase{
		ID:           "P1",
		Date:         mustDate(t, "2025-03-02"),
		SupplierName: "Distribuidora Sur",
		Total:        decimal.RequireFromString("59.00"),
		Tax:          decimal.RequireFromString("9.00"),
	}); err != nil {
		t.Fatalf("seed purchase: %v", err)
	}

	if _, err := uc.FromSale(ctx, &domain.Sale{
		ID:    "S2",
		Date:  mustDate(t, "2025-04-15"),
		Total: decimal.RequireFromString("200.00"),
	}); err != nil {
		t.Fatalf("seed april sale: %v", err)
	}

	return repo
}

func TestReportUseCase_Summarize(t *testing.T) {
	repo := seedMarch(t)
	uc := usecase.NewReportUseCase(repo, domain.DefaultRegistry(), nil, nil)

	from := mustDate(t, "2025-03-01")
	to := mustDate(t, "2025-03-31")

	tests := []struct {
		name       string
		filter     domain.EntryFilter
		wantDebit  string
		wantCredit string
	}{
		{
			name:       "march only",
			filter:     domain.EntryFilter{DateFrom: &from, DateTo: &to},
			wantDebit:  "177", // 118 sale + 50 inventory + 9 tax credit
			wantCredit: "177",
		},
		{
			name:       "everything",
			filter:     domain.EntryFilter{},
			wantDebit:  "377",
			wantCredit: "377",
		},
		{
			name:       "text query on account label",
			filter:     domain.EntryFilter{TextQuery: "cobrar"},
			wantDebit:  "318", // both receivable debits
			wantCredit: "0",
		},
		{
			name:       "text query on description",
			filter:     domain.EntryFilter{TextQuery: "distribuidora"},
			wantDebit:  "59",
			wantCredit: "59",
		},
		{
			name:       "text query with no matches",
			filter:     domain.EntryFilter{TextQuery: "zzz"},
			wantDebit:  "0",
			wantCredit: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := uc.Summarize(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !summary.TotalDebit.Equal(decimal.RequireFromString(tt.wantDebit)) {
				t.Errorf("total debit = %s, want %s", summary.TotalDebit, tt.wantDebit)
			}

			if !summary.TotalCredit.Equal(decimal.RequireFromString(tt.wantCredit)) {
				t.Errorf("total credit = %s, want %s", summary.TotalCredit, tt.wantCredit)
			}

			if !summary.Balance.Equal(summary.TotalDebit.Sub(summary.TotalCredit)) {
				t.Errorf("balance = %s, want debit-credit = %s",
					summary.Balance, summary.TotalDebit.Sub(summary.TotalCredit))
			}
		})
	}
}

func TestReportUseCase_SummarizeByPeriod(t *testing.T) {
	repo := seedMarch(t)
	uc := usecase.NewReportUseCase(repo, domain.DefaultRegistry(), nil, nil)

	ref := mustDate(t, "2025-03-20")

	monthly, err := uc.SummarizeByPeriod(context.Background(), domain.PeriodThisMonth, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !monthly.TotalDebit.Equal(decimal.RequireFromString("177")) {
		t.Errorf("month debit = %s, want 177", monthly.TotalDebit)
	}

	yearly, err := uc.SummarizeByPeriod(context.Background(), domain.PeriodThisYear, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !yearly.TotalDebit.Equal(decimal.RequireFromString("377")) {
		t.Errorf("year debit = %s, want 377", yearly.TotalDebit)
	}

	all, err := uc.SummarizeByPeriod(context.Background(), domain.PeriodAll, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !all.Balance.IsZero() {
		t.Errorf("whole ledger balance = %s, want 0", all.Balance)
	}
}

func TestReportUseCase_ListEntriesOrdered(t *testing.T) {
	repo := seedMarch(t)
	uc := usecase.NewReportUseCase(repo, domain.DefaultRegistry(), nil, nil)

	entries, err := uc.ListEntries(context.Background(), domain.EntryFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 8 {
		t.Fatalf("got %d entries, want 8", len(entries))
	}

	for i := 1; i < len(entries); i++ {
		if entries[i].Date.Before(entries[i-1].Date) {
			t.Fatalf("entries out of order at %d: %s after %s",
				i, entries[i].Date, entries[i-1].Date)
		}
	}

	// Every stored entry carries exactly one positive side.
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			t.Errorf("stored entry %s violates entry invariant: %v", e.ID, err)
		}
	}
}

func TestReportUseCase_SummaryCache(t *testing.T) {
	repo := seedMarch(t)
	cache := mocks.NewMockCache()
	uc := usecase.NewReportUseCase(repo, domain.DefaultRegistry(), cache, nil)

	first, err := uc.Summarize(context.Background(), domain.EntryFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second call with the same filter must be served from cache even
	// if the repository starts failing.
	calls := 0
	repo.ListEntriesFunc = func(ctx context.Context, dateFrom, dateTo *time.Time) ([]*domain.JournalEntry, error) {
		calls++
		return nil, nil
	}

	second, err := uc.Summarize(context.Background(), domain.EntryFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 0 {
		t.Fatalf("expected cached summary, repository was queried %d times", calls)
	}

	if !second.TotalDebit.Equal(first.TotalDebit) || !second.Balance.Equal(first.Balance) {
		t.Fatalf("cached summary %+v differs from computed %+v", second, first)
	}
}

func TestReportUseCase_SummaryCacheInvalidatedByWrite(t *testing.T) {
	repo := mocks.NewMockLedgerRepository()
	cache := mocks.NewMockCache()

	postingUC := usecase.NewPostingUseCase(
		domain.DefaultRegistry(),
		mocks.NewMockTransactionManager(),
		repo,
		mocks.NewMockIDGenerator(),
		&mocks.MockRetrier{},
		cache,
		nil,
		usecase.DefaultRules(),
	)
	reportUC := usecase.NewReportUseCase(repo, domain.DefaultRegistry(), cache, nil)

	ctx := context.Background()

	if _, err := postingUC.FromSale(ctx, &domain.Sale{
		ID:    "S1",
		Date:  mustDate(t, "2025-03-01"),
		Total: decimal.RequireFromString("118.00"),
		Tax:   decimal.RequireFromString("18.00"),
	}); err != nil {
		t.Fatalf("seed sale: %v", err)
	}

	warm, err := reportUC.Summarize(ctx, domain.EntryFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !warm.TotalDebit.Equal(decimal.RequireFromString("118")) {
		t.Fatalf("warm debit = %s, want 118", warm.TotalDebit)
	}

	// A new posting must be visible immediately, not after the cache TTL.
	if _, err := postingUC.FromSale(ctx, &domain.Sale{
		ID:    "S2",
		Date:  mustDate(t, "2025-03-02"),
		Total: decimal.RequireFromString("200.00"),
	}); err != nil {
		t.Fatalf("second sale: %v", err)
	}

	fresh, err := reportUC.Summarize(ctx, domain.EntryFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !fresh.TotalDebit.Equal(decimal.RequireFromString("318")) {
		t.Fatalf("debit after write = %s, want 318", fresh.TotalDebit)
	}
}
