package domain

import "sort"

// Classification groups accounts by their role in the accounting equation.
type Classification string

const (
	ClassAsset     Classification = "asset"
	ClassLiability Classification = "liability"
	ClassEquity    Classification = "equity"
	ClassIncome    Classification = "income"
	ClassExpense   Classification = "expense"
)

// Account is a line of the chart of accounts. Accounts are immutable
// reference data seeded at startup; the registry is the only way to
// resolve a code.
type Account struct {
	Code           string
	Label          string
	Classification Classification
}

// IncreasesWithDebit reports whether a debit raises this account's balance.
func (a Account) IncreasesWithDebit() bool {
	return a.Classification == ClassAsset || a.Classification == ClassExpense
}

// Registry resolves account codes against a fixed chart of accounts.
type Registry struct {
	byCode map[string]Account
}

// NewRegistry builds a registry from a chart. Later duplicates win so a
// deployment can override a seeded account.
func NewRegistry(chart []Account) *Registry {
	byCode := make(map[string]Account, len(chart))
	for _, a := range chart {
		byCode[a.Code] = a
	}

	return &Registry{byCode: byCode}
}

// Lookup resolves an account code.
func (r *Registry) Lookup(code string) (Account, error) {
	a, ok := r.byCode[code]
	if !ok {
		return Account{}, ErrAccountNotFound
	}

	return a, nil
}

// Label returns the account label for a code, or the code itself when
// the code is unknown. Used for display only, never for validation.
func (r *Registry) Label(code string) string {
	if a, ok := r.byCode[code]; ok {
		return a.Label
	}

	return code
}

// All returns the chart ordered by code.
func (r *Registry) All() []Account {
	accounts := make([]Account, 0, len(r.byCode))
	for _, a := range r.byCode {
		accounts = append(accounts, a)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Code < accounts[j].Code
	})

	return accounts
}
