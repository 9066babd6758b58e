package handler

import (
	"net/http"
	"time"

	"github.com/jcr/golibro/internal/adapter/http/dto"
	"github.com/jcr/golibro/internal/domain"
	"github.com/jcr/golibro/internal/usecase"
)

// ReportHandler answers entry listings and summaries.
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	registry *domain.Registry
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC *usecase.ReportUseCase, registry *domain.Registry) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, registry: registry}
}

// ListEntries lists journal entries matching the query. Supported
// query parameters: from, to (YYYY-MM-DD, inclusive) and q (free text
// over descriptions, account codes, labels and references).
func (h *ReportHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date filter", err.Error())
		return
	}

	entries, err := h.reportUC.ListEntries(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries, h.registry))
}

// Summarize returns debit, credit and balance totals for the matching
// entries. When period is present it wins over from/to; ref anchors
// the period and defaults to today.
func (h *ReportHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	if p := r.URL.Query().Get("period"); p != "" {
		h.summarizeByPeriod(w, r, p)
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date filter", err.Error())
		return
	}

	summary, err := h.reportUC.Summarize(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to summarize", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) summarizeByPeriod(w http.ResponseWriter, r *http.Request, p string) {
	period, err := domain.ParsePeriod(p)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	ref := time.Now().UTC()
	if raw := r.URL.Query().Get("ref"); raw != "" {
		ref, err = domain.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid reference date", err.Error())
			return
		}
	}

	summary, err := h.reportUC.SummarizeByPeriod(r.Context(), period, ref)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to summarize", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func filterFromQuery(r *http.Request) (domain.EntryFilter, error) {
	filter := domain.EntryFilter{
		TextQuery: r.URL.Query().Get("q"),
	}

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := domain.ParseDate(raw)
		if err != nil {
			return domain.EntryFilter{}, err
		}
		filter.DateFrom = &from
	}

	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := domain.ParseDate(raw)
		if err != nil {
			return domain.EntryFilter{}, err
		}
		filter.DateTo = &to
	}

	return filter, nil
}
