package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a completed sale reported by the sales module. The ledger
// only reads it; it never owns or mutates sale documents.
type Sale struct {
	ID           string
	Date         time.Time
	CustomerName string
	Total        decimal.Decimal
	Tax          decimal.Decimal
}

// Subtotal is the net amount before tax.
func (s *Sale) Subtotal() decimal.Decimal {
	return s.Total.Sub(s.Tax)
}

// Purchase is a completed purchase reported by the purchasing module.
type Purchase struct {
	ID           string
	Date         time.Time
	SupplierName string
	Total        decimal.Decimal
	Tax          decimal.Decimal
}

// Subtotal is the net amount before tax.
func (p *Purchase) Subtotal() decimal.Decimal {
	return p.Total.Sub(p.Tax)
}
