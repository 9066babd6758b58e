package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestSummaryCmd(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_debit":"177","total_credit":"177","balance":"0"}`))
	}))
	defer server.Close()

	baseURL = server.URL

	cmd := summaryCmd()
	cmd.SetArgs([]string{"--period", "month", "--ref", "2025-03-15"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if !strings.Contains(gotQuery, "period=month") || !strings.Contains(gotQuery, "ref=2025-03-15") {
		t.Fatalf("unexpected query: %s", gotQuery)
	}

	if !strings.Contains(out, `"total_debit"`) {
		t.Fatalf("expected summary output, got:\n%s", out)
	}
}

func TestEntriesCmdFilters(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	baseURL = server.URL

	cmd := entriesCmd()
	cmd.SetArgs([]string{"--from", "2025-03-01", "--to", "2025-03-31", "-q", "alquiler"})

	captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	for _, want := range []string{"from=2025-03-01", "to=2025-03-31", "q=alquiler"} {
		if !strings.Contains(gotQuery, want) {
			t.Fatalf("expected %s in query, got %s", want, gotQuery)
		}
	}
}

func TestConsistencyCmdFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"status":"inconsistent","consistent":false}`))
	}))
	defer server.Close()

	baseURL = server.URL

	cmd := consistencyCmd()
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for inconsistent ledger")
	}
}

func TestGetJSONErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid date filter"}`))
	}))
	defer server.Close()

	baseURL = server.URL

	if err := getJSON("/api/v1/entries", nil); err == nil {
		t.Fatalf("expected error for 400 response")
	}
}
