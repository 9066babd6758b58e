package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jcr/golibro/internal/adapter/http/dto"
	"github.com/jcr/golibro/internal/domain"
	"github.com/jcr/golibro/internal/usecase"
)

// PostingHandler turns sale and purchase documents into postings.
type PostingHandler struct {
	postingUC *usecase.PostingUseCase
	registry  *domain.Registry
}

// NewPostingHandler creates a new PostingHandler.
func NewPostingHandler(postingUC *usecase.PostingUseCase, registry *domain.Registry) *PostingHandler {
	return &PostingHandler{postingUC: postingUC, registry: registry}
}

// CreateFromSale posts the entries derived from a sale document.
// Posting the same sale twice returns 409.
func (h *PostingHandler) CreateFromSale(w http.ResponseWriter, r *http.Request) {
	var req dto.SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sale, err := req.ToDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sale date", err.Error())
		return
	}

	posting, err := h.postingUC.FromSale(r.Context(), sale)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to post sale", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.PostingFromDomain(posting, h.registry))
}

// CreateFromPurchase posts the entries derived from a purchase document.
func (h *PostingHandler) CreateFromPurchase(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	purchase, err := req.ToDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid purchase date", err.Error())
		return
	}

	posting, err := h.postingUC.FromPurchase(r.Context(), purchase)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to post purchase", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.PostingFromDomain(posting, h.registry))
}

// Get retrieves a posting by ID.
func (h *PostingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing posting ID", "")
		return
	}

	posting, err := h.postingUC.GetPosting(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get posting", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PostingFromDomain(posting, h.registry))
}

// Reverse appends the offsetting posting for an existing one.
func (h *PostingHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing posting ID", "")
		return
	}

	var req dto.ReversePostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reversal date", err.Error())
		return
	}

	reversal, err := h.postingUC.ReversePosting(r.Context(), id, date, req.Description)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to reverse posting", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.PostingFromDomain(reversal, h.registry))
}
