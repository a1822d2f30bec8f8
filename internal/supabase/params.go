package supabase

import (
	"database/sql/driver"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uuidArray adapts a UUID slice for use as a Postgres array parameter.
func uuidArray(ids []uuid.UUID) driver.Valuer {
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = id.String()
	}
	return pq.Array(values)
}
