package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcr/golibro/internal/domain"
	"github.com/jcr/golibro/internal/infrastructure/metrics"
)

// Summary is the aggregate surface exposed to callers.
type Summary struct {
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// ReportUseCase answers aggregate queries over the ledger.
type ReportUseCase struct {
	ledgerRepo LedgerRepository
	registry   *domain.Registry
	cache      Cache
	metrics    *metrics.Metrics
}

// NewReportUseCase creates a new ReportUseCase. cache and m may be nil.
func NewReportUseCase(ledgerRepo LedgerRepository, registry *domain.Registry, cache Cache, m *metrics.Metrics) *ReportUseCase {
	return &ReportUseCase{
		ledgerRepo: ledgerRepo,
		registry:   registry,
		cache:      cache,
		metrics:    m,
	}
}

// ListEntries returns the entries matching the filter, ordered by date
// ascending then insertion order. Date bounds are pushed down to the
// store; the text query also matches registry labels, which only the
// engine knows, so it is applied here.
func (uc *ReportUseCase) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]*domain.JournalEntry, error) {
	rows, err := uc.ledgerRepo.ListEntries(ctx, filter.DateFrom, filter.DateTo)
	if err != nil {
		return nil, err
	}

	if filter.TextQuery == "" {
		return rows, nil
	}

	entries := make([]*domain.JournalEntry, 0, len(rows))
	for _, e := range rows {
		if filter.MatchesText(e, uc.registry.Label(e.AccountCode)) {
			entries = append(entries, e)
		}
	}

	return entries, nil
}

// Summarize computes total debit, total credit, and their difference
// over exactly the entries matched by the filter.
func (uc *ReportUseCase) Summarize(ctx context.Context, filter domain.EntryFilter) (Summary, error) {
	return uc.summarize(ctx, filter, "custom")
}

// SummarizeByPeriod resolves a predefined range against the supplied
// reference date and summarizes it. The reference date is always an
// explicit input; the engine never reads the wall clock for reporting.
func (uc *ReportUseCase) SummarizeByPeriod(ctx context.Context, period domain.Period, ref time.Time) (Summary, error) {
	return uc.summarize(ctx, period.Filter(ref), string(period))
}

func (uc *ReportUseCase) summarize(ctx context.Context, filter domain.EntryFilter, period string) (Summary, error) {
	if uc.metrics != nil {
		uc.metrics.SummaryRequests.WithLabelValues(period).Inc()
	}

	key := uc.summaryCacheKey(ctx, filter)
	if cached, ok := uc.cachedSummary(ctx, key); ok {
		if uc.metrics != nil {
			uc.metrics.SummaryCacheHits.Inc()
		}
		return cached, nil
	}

	entries, err := uc.ListEntries(ctx, filter)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, e := range entries {
		summary.TotalDebit = summary.TotalDebit.Add(e.Debit)
		summary.TotalCredit = summary.TotalCredit.Add(e.Credit)
	}

	summary.Balance = summary.TotalDebit.Sub(summary.TotalCredit)

	uc.storeSummary(ctx, key, summary)

	return summary, nil
}

func (uc *ReportUseCase) cachedSummary(ctx context.Context, key string) (Summary, bool) {
	if uc.cache == nil {
		return Summary{}, false
	}

	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		return Summary{}, false
	}

	var summary Summary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return Summary{}, false
	}

	return summary, true
}

func (uc *ReportUseCase) storeSummary(ctx context.Context, key string, summary Summary) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}

	// Best effort; a cold cache only costs a recompute.
	_ = uc.cache.Set(ctx, key, string(raw), SummaryCacheTTL)
}

const summaryGenerationKey = "summary:generation"

// summaryCacheKey folds the ledger generation into the key, so cached
// summaries never outlive a write to the journal.
func (uc *ReportUseCase) summaryCacheKey(ctx context.Context, filter domain.EntryFilter) string {
	gen := ""
	if uc.cache != nil {
		if g, err := uc.cache.Get(ctx, summaryGenerationKey); err == nil {
			gen = g
		}
	}

	from, to := "", ""
	if filter.DateFrom != nil {
		from = filter.DateFrom.Format(domain.DateOnly)
	}

	if filter.DateTo != nil {
		to = filter.DateTo.Format(domain.DateOnly)
	}

	return fmt.Sprintf("summary:%s:%s:%s:%s", gen, from, to, filter.TextQuery)
}

// bumpSummaryGeneration retags the summary key space with the latest
// posting id. Called after every successful append.
func bumpSummaryGeneration(ctx context.Context, cache Cache, postingID string) {
	if cache == nil {
		return
	}

	_ = cache.Set(ctx, summaryGenerationKey, postingID, 0)
}
