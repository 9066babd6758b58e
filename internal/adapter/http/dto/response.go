package dto

import (
	"time"

	"github.com/jcr/golibro/internal/domain"
	"github.com/shopspring/decimal"
)

// EntryResponse represents a journal entry in API responses.
type EntryResponse struct {
	ID               string          `json:"id"`
	PostingID        string          `json:"posting_id"`
	Date             string          `json:"date"`
	Description      string          `json:"description"`
	AccountCode      string          `json:"account_code"`
	AccountLabel     string          `json:"account_label,omitempty"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	Kind             string          `json:"kind"`
	Origin           string          `json:"origin,omitempty"`
	SourceDocumentID string          `json:"source_document_id,omitempty"`
	Reference        string          `json:"reference,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response. The registry
// supplies the account label; a nil registry leaves it blank.
func EntryFromDomain(e *domain.JournalEntry, registry *domain.Registry) *EntryResponse {
	resp := &EntryResponse{
		ID:               e.ID,
		PostingID:        e.PostingID,
		Date:             e.Date.Format(domain.DateOnly),
		Description:      e.Description,
		AccountCode:      e.AccountCode,
		Debit:            e.Debit,
		Credit:           e.Credit,
		Kind:             string(e.Kind),
		Origin:           e.Origin,
		SourceDocumentID: e.SourceDocumentID,
		Reference:        e.Reference,
		CreatedAt:        e.CreatedAt,
	}

	if registry != nil {
		resp.AccountLabel = registry.Label(e.AccountCode)
	}

	return resp
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.JournalEntry, registry *domain.Registry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e, registry)
	}
	return result
}

// PostingResponse represents a posting in API responses.
type PostingResponse struct {
	ID               string           `json:"id"`
	Origin           string           `json:"origin"`
	SourceDocumentID string           `json:"source_document_id,omitempty"`
	TotalDebit       decimal.Decimal  `json:"total_debit"`
	TotalCredit      decimal.Decimal  `json:"total_credit"`
	CreatedAt        time.Time        `json:"created_at"`
	Entries          []*EntryResponse `json:"entries"`
}

// PostingFromDomain converts a domain posting to a response.
func PostingFromDomain(p *domain.Posting, registry *domain.Registry) *PostingResponse {
	entries := make([]*EntryResponse, len(p.Entries))
	for i := range p.Entries {
		entries[i] = EntryFromDomain(&p.Entries[i], registry)
	}

	return &PostingResponse{
		ID:               p.ID,
		Origin:           p.Origin,
		SourceDocumentID: p.SourceDocumentID,
		TotalDebit:       p.TotalDebit(),
		TotalCredit:      p.TotalCredit(),
		CreatedAt:        p.CreatedAt,
		Entries:          entries,
	}
}

// AccountResponse represents a chart account in API responses.
type AccountResponse struct {
	Code           string `json:"code"`
	Label          string `json:"label"`
	Classification string `json:"classification"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a domain.Account) AccountResponse {
	return AccountResponse{
		Code:           a.Code,
		Label:          a.Label,
		Classification: string(a.Classification),
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []domain.Account) []AccountResponse {
	result := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
