package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound reports that an owner-scoped statement matched no rows.
// A missing id, an id owned by another user, and a protected row are
// indistinguishable through it.
var ErrNotFound = errors.New("not found")

// execOwned runs a mutation whose WHERE clause filters by row id and owner
// (plus any protection predicate) and returns ErrNotFound when it affected
// no rows.
func execOwned(db *sql.DB, op, query string, args ...any) error {
	result, err := db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
