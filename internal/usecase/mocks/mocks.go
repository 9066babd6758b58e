// Package mocks provides hand-written mocks with sensible in-memory
// defaults. Every method can be overridden per test via its Func field.
package mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcr/golibro/internal/domain"
	"github.com/jcr/golibro/internal/usecase"
)

// ErrCacheMiss is what MockCache returns for absent keys.
var ErrCacheMiss = errors.New("cache miss")

// MockLedgerRepository is a mock implementation of LedgerRepository
// backed by an in-memory append-only slice.
type MockLedgerRepository struct {
	mu       sync.RWMutex
	postings map[string]*domain.Posting
	entries  []*domain.JournalEntry

	AppendPostingFunc func(ctx context.Context, tx usecase.Transaction, posting *domain.Posting) error
	GetPostingFunc    func(ctx context.Context, id string) (*domain.Posting, error)
	ListEntriesFunc   func(ctx context.Context, dateFrom, dateTo *time.Time) ([]*domain.JournalEntry, error)
	HasPostingForFunc func(ctx context.Context, origin, sourceDocumentID string) (bool, error)
	TotalsFunc        func(ctx context.Context) (decimal.Decimal, decimal.Decimal, error)
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{
		postings: make(map[string]*domain.Posting),
	}
}

func (m *MockLedgerRepository) AppendPosting(ctx context.Context, tx usecase.Transaction, posting *domain.Posting) error {
	if m.AppendPostingFunc != nil {
		return m.AppendPostingFunc(ctx, tx, posting)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if posting.SourceDocumentID != "" {
		for _, e := range m.entries {
			if e.Origin == posting.Origin && e.SourceDocumentID == posting.SourceDocumentID {
				return domain.ErrDuplicatePosting
			}
		}
	}

	stored := *posting
	m.postings[posting.ID] = &stored
	for i := range posting.Entries {
		entry := posting.Entries[i]
		m.entries = append(m.entries, &entry)
	}

	return nil
}

func (m *MockLedgerRepository) GetPosting(ctx context.Context, id string) (*domain.Posting, error) {
	if m.GetPostingFunc != nil {
		return m.GetPostingFunc(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if p, ok := m.postings[id]; ok {
		return p, nil
	}

	return nil, domain.ErrPostingNotFound
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, dateFrom, dateTo *time.Time) ([]*domain.JournalEntry, error) {
	if m.ListEntriesFunc != nil {
		return m.ListEntriesFunc(ctx, dateFrom, dateTo)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*domain.JournalEntry
	for _, e := range m.entries {
		if insideDateRange(e, dateFrom, dateTo) {
			result = append(result, e)
		}
	}

	sortEntriesByDate(result)

	return result, nil
}

func (m *MockLedgerRepository) HasPostingFor(ctx context.Context, origin, sourceDocumentID string) (bool, error) {
	if m.HasPostingForFunc != nil {
		return m.HasPostingForFunc(ctx, origin, sourceDocumentID)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.entries {
		if e.Origin == origin && e.SourceDocumentID == sourceDocumentID {
			return true, nil
		}
	}

	return false, nil
}

func (m *MockLedgerRepository) Totals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	if m.TotalsFunc != nil {
		return m.TotalsFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for _, e := range m.entries {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	return totalDebit, totalCredit, nil
}

// Entries returns a copy of everything appended so far.
func (m *MockLedgerRepository) Entries() []*domain.JournalEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]*domain.JournalEntry(nil), m.entries...)
}

// insideDateRange mirrors the inclusive date bounds the real store
// applies in SQL.
func insideDateRange(e *domain.JournalEntry, from, to *time.Time) bool {
	if from != nil && e.Date.Before(domain.NormalizeDate(*from)) {
		return false
	}

	if to != nil && e.Date.After(domain.NormalizeDate(*to)) {
		return false
	}

	return true
}

func sortEntriesByDate(entries []*domain.JournalEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Date.Before(entries[j-1].Date); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}

// MockTransaction is a no-op transaction recording commits/rollbacks.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	t.RolledBack = true
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	Begun int
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	m.Begun++
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockIDGenerator is a mock implementation of IDGenerator producing
// sequential ids.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu   sync.Mutex
	next int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++

	return "id-" + itoa(m.next)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}

	return string(digits)
}

// MockCache is an in-memory Cache.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.values[key]; ok {
		return v, nil
	}

	return "", ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value

	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)

	return nil
}

// MockRetrier runs the operation once, no backoff.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}

	return operation()
}
