// internal/state/interface.go
package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	RecordSearch(rec SearchRecord) error
	RecentSearches(limit int) ([]SearchRecord, error)
	DeleteSearch(query string) error
	ClearHistory() error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
