// internal/state/mock.go
package state

import (
	"slices"
	"strings"
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	records []SearchRecord
	err     error
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) RecordSearch(rec SearchRecord) error {
	if m.err != nil {
		return m.err
	}
	if rec.SearchedAt.IsZero() {
		rec.SearchedAt = time.Now()
	}
	m.records = slices.DeleteFunc(m.records, func(r SearchRecord) bool {
		return strings.EqualFold(r.Query, rec.Query)
	})
	m.records = append([]SearchRecord{rec}, m.records...)
	return nil
}

func (m *Mock) RecentSearches(limit int) ([]SearchRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && limit < len(m.records) {
		return slices.Clone(m.records[:limit]), nil
	}
	return slices.Clone(m.records), nil
}

func (m *Mock) DeleteSearch(query string) error {
	if m.err != nil {
		return m.err
	}
	m.records = slices.DeleteFunc(m.records, func(r SearchRecord) bool {
		return strings.EqualFold(r.Query, query)
	})
	return nil
}

func (m *Mock) ClearHistory() error {
	if m.err != nil {
		return m.err
	}
	m.records = nil
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetError(err error) { m.err = err }

func (m *Mock) Records() []SearchRecord { return m.records }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
