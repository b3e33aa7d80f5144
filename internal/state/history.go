package state

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// SearchRecord is one remembered query.
type SearchRecord struct {
	Query      string
	Results    int
	TotalPages int
	Failed     bool
	SearchedAt time.Time
}

// RecordSearch remembers a committed query, replacing an earlier entry for
// the same query (case-insensitively). The oldest entries beyond the
// history limit are dropped.
func (m *Manager) RecordSearch(rec SearchRecord) error {
	return recordSearch(m.db, rec)
}

// RecentSearches returns up to limit queries, most recent first.
func (m *Manager) RecentSearches(limit int) ([]SearchRecord, error) {
	return recentSearches(m.db, limit)
}

// DeleteSearch forgets one query.
func (m *Manager) DeleteSearch(query string) error {
	_, err := m.db.Exec(`DELETE FROM search_history WHERE query = ?`, query)
	return err
}

// ClearHistory forgets every query.
func (m *Manager) ClearHistory() error {
	_, err := m.db.Exec(`DELETE FROM search_history`)
	return err
}

func recordSearch(conn *sql.DB, rec SearchRecord) error {
	query := strings.TrimSpace(rec.Query)
	if query == "" {
		return nil
	}
	if rec.SearchedAt.IsZero() {
		rec.SearchedAt = time.Now()
	}

	return inTx(context.Background(), conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO search_history (query, results, total_pages, failed, searched_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(query) DO UPDATE SET
				query = excluded.query,
				results = excluded.results,
				total_pages = excluded.total_pages,
				failed = excluded.failed,
				searched_at = excluded.searched_at
		`, query, rec.Results, rec.TotalPages, rec.Failed, rec.SearchedAt.UnixMilli())
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM search_history WHERE query NOT IN (
				SELECT query FROM search_history ORDER BY searched_at DESC LIMIT ?
			)
		`, maxHistory)
		return err
	})
}

func recentSearches(conn *sql.DB, limit int) ([]SearchRecord, error) {
	if limit <= 0 {
		limit = maxHistory
	}
	rows, err := conn.Query(`
		SELECT query, results, total_pages, failed, searched_at
		FROM search_history
		ORDER BY searched_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []SearchRecord
	for rows.Next() {
		var rec SearchRecord
		var searchedAt int64
		if err := rows.Scan(&rec.Query, &rec.Results, &rec.TotalPages, &rec.Failed, &searchedAt); err != nil {
			return nil, err
		}
		rec.SearchedAt = time.UnixMilli(searchedAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}
