package dto

import (
	"fmt"

	"github.com/jcr/golibro/internal/domain"
	"github.com/jcr/golibro/internal/usecase"
	"github.com/shopspring/decimal"
)

// ManualEntryItem is a single line of a manual posting.
type ManualEntryItem struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	AccountCode string          `json:"account_code"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Reference   string          `json:"reference,omitempty"`
}

// ManualPostingRequest represents a request to record a manual posting.
// The lines must balance as a group.
type ManualPostingRequest struct {
	Origin  string            `json:"origin,omitempty"`
	Entries []ManualEntryItem `json:"entries"`
}

// ToUseCaseInput converts to use case input. Dates are day precision
// in YYYY-MM-DD form.
func (r *ManualPostingRequest) ToUseCaseInput() ([]usecase.ManualEntryInput, error) {
	inputs := make([]usecase.ManualEntryInput, len(r.Entries))
	for i, item := range r.Entries {
		date, err := domain.ParseDate(item.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		inputs[i] = usecase.ManualEntryInput{
			Date:        date,
			Description: item.Description,
			AccountCode: item.AccountCode,
			Debit:       item.Debit,
			Credit:      item.Credit,
			Reference:   item.Reference,
		}
	}

	return inputs, nil
}

// SaleRequest represents a sale document to post.
type SaleRequest struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	Tax          decimal.Decimal `json:"tax"`
}

// ToDomain converts to a domain sale.
func (r *SaleRequest) ToDomain() (*domain.Sale, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &domain.Sale{
		ID:           r.ID,
		Date:         date,
		CustomerName: r.CustomerName,
		Total:        r.Total,
		Tax:          r.Tax,
	}, nil
}

// PurchaseRequest represents a purchase document to post.
type PurchaseRequest struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	SupplierName string          `json:"supplier_name"`
	Total        decimal.Decimal `json:"total"`
	Tax          decimal.Decimal `json:"tax"`
}

// ToDomain converts to a domain purchase.
func (r *PurchaseRequest) ToDomain() (*domain.Purchase, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &domain.Purchase{
		ID:           r.ID,
		Date:         date,
		SupplierName: r.SupplierName,
		Total:        r.Total,
		Tax:          r.Tax,
	}, nil
}

// ReversePostingRequest represents a request to reverse a posting.
type ReversePostingRequest struct {
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}
