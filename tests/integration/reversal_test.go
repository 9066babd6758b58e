package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jcr/golibro/internal/adapter/http/dto"
	"github.com/jcr/golibro/internal/domain"
)

func TestReversalFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	router, testDB := newTestServer(t)
	defer testDB.Cleanup()

	testDB.TruncateAll(ctx)

	sale := `{"id":"S1","date":"2025-03-01","customer_name":"Bodega Central","total":"118","tax":"18"}`
	rec := postJSON(t, router, "/api/v1/sales", sale)
	if rec.Code != http.StatusCreated {
		t.Fatalf("failed to post sale: %d: %s", rec.Code, rec.Body.String())
	}

	var original dto.PostingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &original); err != nil {
		t.Fatalf("failed to decode posting: %v", err)
	}

	rec = postJSON(t, router, "/api/v1/postings/"+original.ID+"/reverse", `{"date":"2025-03-05"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("failed to reverse posting: %d: %s", rec.Code, rec.Body.String())
	}

	var reversal dto.PostingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &reversal); err != nil {
		t.Fatalf("failed to decode reversal: %v", err)
	}

	if reversal.Origin != domain.OriginReversal {
		t.Fatalf("expected origin reversa, got %s", reversal.Origin)
	}

	if reversal.SourceDocumentID != original.ID {
		t.Fatalf("expected reversal to reference %s, got %s", original.ID, reversal.SourceDocumentID)
	}

	if !reversal.TotalDebit.Equal(original.TotalCredit) {
		t.Fatalf("expected swapped sides, got debit=%s want %s", reversal.TotalDebit, original.TotalCredit)
	}

	// Reversing the same posting again must be rejected.
	rec = postJSON(t, router, "/api/v1/postings/"+original.ID+"/reverse", `{"date":"2025-03-06"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on second reversal, got %d", rec.Code)
	}

	// The original rows are untouched and the ledger nets to zero.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/postings/"+original.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected original posting intact, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ledger/consistency", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected consistent ledger after reversal, got %d: %s", rec.Code, rec.Body.String())
	}
}
