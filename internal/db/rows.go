package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/2beens/gymmanager/internal/gym"
)

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// CollectRows scans every row and closes rows. The result is never nil,
// so empty lists encode as [].
func CollectRows[T any](rows *sql.Rows, scan func(Scanner) (T, error)) ([]T, error) {
	defer func() { _ = rows.Close() }()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}

// ScanOne scans a single row, mapping sql.ErrNoRows to gym.ErrNotFound.
func ScanOne[T any](row *sql.Row, scan func(Scanner) (T, error)) (T, error) {
	item, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, gym.ErrNotFound
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("row scan: %w", classify(err))
	}
	return item, nil
}
