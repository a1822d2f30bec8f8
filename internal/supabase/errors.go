package supabase

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes this layer recognizes.
const (
	pgUndefinedTable        = "42P01"
	pgInsufficientPrivilege = "42501"
)

// TranslateError maps a database failure to the human-readable message the
// API surfaces. Recognized Postgres codes get a specific message, anything
// else stays generic.
func TranslateError(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUndefinedTable:
			return "a required table is missing, run migrations"
		case pgInsufficientPrivilege:
			return "permission denied by the database"
		}
	}
	return "database error"
}
