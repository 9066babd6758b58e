package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jcr/golibro/internal/adapter/http/dto"
	"github.com/jcr/golibro/internal/domain"
	"github.com/jcr/golibro/internal/usecase"
	"github.com/jcr/golibro/internal/usecase/mocks"
)

func newReportHandler(t *testing.T) *ReportHandler {
	t.Helper()

	registry := domain.DefaultRegistry()
	repo := mocks.NewMockLedgerRepository()

	postingUC := usecase.NewPostingUseCase(
		registry,
		mocks.NewMockTransactionManager(),
		repo,
		mocks.NewMockIDGenerator(),
		nil,
		nil,
		nil,
		usecase.DefaultRules(),
	)

	ctx := context.Background()
	sale := &domain.Sale{
		ID:           "S1",
		Date:         mustParseDate(t, "2025-03-01"),
		CustomerName: "Bodega Central",
		Total:        decimalFromString(t, "118"),
		Tax:          decimalFromString(t, "18"),
	}
	if _, err := postingUC.FromSale(ctx, sale); err != nil {
		t.Fatalf("failed to seed sale: %v", err)
	}

	purchase := &domain.Purchase{
		ID:           "P1",
		Date:         mustParseDate(t, "2025-04-02"),
		SupplierName: "Distribuidora Sur",
		Total:        decimalFromString(t, "59"),
		Tax:          decimalFromString(t, "9"),
	}
	if _, err := postingUC.FromPurchase(ctx, purchase); err != nil {
		t.Fatalf("failed to seed purchase: %v", err)
	}

	reportUC := usecase.NewReportUseCase(repo, registry, nil, nil)

	return NewReportHandler(reportUC, registry)
}

func TestListEntries(t *testing.T) {
	h := newReportHandler(t)

	rec := httptest.NewRecorder()
	h.ListEntries(rec, httptest.NewRequest(http.MethodGet, "/api/v1/entries", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var entries []*dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(entries) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(entries))
	}

	if entries[0].AccountLabel == "" {
		t.Fatalf("expected account labels to be filled in")
	}
}

func TestListEntriesDateFilter(t *testing.T) {
	h := newReportHandler(t)

	rec := httptest.NewRecorder()
	h.ListEntries(rec, httptest.NewRequest(http.MethodGet, "/api/v1/entries?from=2025-03-01&to=2025-03-31", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var entries []*dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 March entries, got %d", len(entries))
	}
}

func TestListEntriesBadDate(t *testing.T) {
	h := newReportHandler(t)

	rec := httptest.NewRecorder()
	h.ListEntries(rec, httptest.NewRequest(http.MethodGet, "/api/v1/entries?from=March+1st", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSummarize(t *testing.T) {
	h := newReportHandler(t)

	rec := httptest.NewRecorder()
	h.Summarize(rec, httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var summary usecase.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !summary.TotalDebit.Equal(decimalFromString(t, "177")) {
		t.Fatalf("expected total debit 177, got %s", summary.TotalDebit)
	}

	if !summary.Balance.IsZero() {
		t.Fatalf("expected zero balance, got %s", summary.Balance)
	}
}

func TestSummarizeByPeriod(t *testing.T) {
	h := newReportHandler(t)

	rec := httptest.NewRecorder()
	h.Summarize(rec, httptest.NewRequest(http.MethodGet, "/api/v1/summary?period=month&ref=2025-03-15", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var summary usecase.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !summary.TotalDebit.Equal(decimalFromString(t, "118")) {
		t.Fatalf("expected March debits 118, got %s", summary.TotalDebit)
	}
}

func TestSummarizeBadPeriod(t *testing.T) {
	h := newReportHandler(t)

	rec := httptest.NewRecorder()
	h.Summarize(rec, httptest.NewRequest(http.MethodGet, "/api/v1/summary?period=quarter", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
