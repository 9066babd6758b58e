package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jcr/golibro/internal/adapter/http/dto"
	"github.com/jcr/golibro/internal/domain"
	"github.com/jcr/golibro/internal/usecase"
)

// JournalHandler handles manual journal postings.
type JournalHandler struct {
	journalUC *usecase.JournalUseCase
	registry  *domain.Registry
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalUC *usecase.JournalUseCase, registry *domain.Registry) *JournalHandler {
	return &JournalHandler{journalUC: journalUC, registry: registry}
}

// Create records a balanced group of manual entries as one posting.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ManualPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	inputs, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry date", err.Error())
		return
	}

	posting, err := h.journalUC.RecordManual(r.Context(), req.Origin, inputs)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to record posting", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.PostingFromDomain(posting, h.registry))
}

// Validate checks manual lines without writing anything.
func (h *JournalHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ManualPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	inputs, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry date", err.Error())
		return
	}

	for i, input := range inputs {
		if _, err := h.journalUC.ValidateManual(input); err != nil {
			writeJSON(w, http.StatusOK, map[string]any{
				"valid": false,
				"line":  i,
				"error": err.Error(),
			})

			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"valid": true})
}
