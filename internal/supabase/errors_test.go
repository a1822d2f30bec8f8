package supabase_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"fotomodel-backend/internal/supabase"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing table",
			err:  &pq.Error{Code: "42P01"},
			want: "a required table is missing, run migrations",
		},
		{
			name: "permission denied",
			err:  &pq.Error{Code: "42501"},
			want: "permission denied by the database",
		},
		{
			name: "wrapped pq error",
			err:  fmt.Errorf("query failed: %w", &pq.Error{Code: "42P01"}),
			want: "a required table is missing, run migrations",
		},
		{
			name: "other pq error",
			err:  &pq.Error{Code: "23505"},
			want: "database error",
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: "database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, supabase.TranslateError(tt.err))
		})
	}
}
