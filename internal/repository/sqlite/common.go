package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"timesheet-sync/internal/errors"
)

// DBTX is the query surface shared by *sql.DB and *sql.Tx, so every data
// access helper works identically inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// HandleDatabaseError converts database errors to structured app errors
func HandleDatabaseError(operation string, err error) error {
	return errors.NewDatabaseError(operation, err)
}

// execute runs a statement and wraps any failure as a database error.
func execute(ctx context.Context, db DBTX, query string, operation string, args ...interface{}) error {
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return HandleDatabaseError(operation, err)
	}
	return nil
}

// querySingle executes a query that returns a single row and scans it
func querySingle[T any](ctx context.Context, db DBTX, query string, scanFunc func(Scanner) (*T, error), entityType string, id string, args ...interface{}) (*T, error) {
	row := db.QueryRowContext(ctx, query, args...)
	result, err := scanFunc(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError(entityType, id)
		}
		return nil, HandleDatabaseError("scan "+entityType, err)
	}
	return result, nil
}

// queryMultiple executes a query that returns multiple rows and scans them
func queryMultiple[T any](ctx context.Context, db DBTX, query string, scanFunc func(Scanner) (*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError("query "+entityType, err)
	}
	defer rows.Close()

	var results []*T
	for rows.Next() {
		result, err := scanFunc(rows)
		if err != nil {
			return nil, HandleDatabaseError("scan "+entityType, err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, HandleDatabaseError("iterate "+entityType, err)
	}

	return results, nil
}

// idPlaceholders builds the "?, ?, ?" placeholder list and argument slice
// for an IN clause over the given ids.
func idPlaceholders(ids []int64) (string, []interface{}) {
	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	return strings.Join(placeholders, ", "), args
}
