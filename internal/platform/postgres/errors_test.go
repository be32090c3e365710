package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farabi1038/lang-portal/internal/store"
)

// stubResult implements sql.Result with a fixed rows-affected count.
type stubResult struct {
	rows int64
	err  error
}

func (r stubResult) LastInsertId() (int64, error) { return 0, nil }
func (r stubResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil passes through", err: nil, want: nil},
		{name: "no rows", err: sql.ErrNoRows, want: store.ErrNotFound},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: uniqueViolationCode},
			want: store.ErrDuplicate,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "fk_word"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "check violation",
			err:  &pgconn.PgError{Code: checkViolationCode, ConstraintName: "ck_score"},
			want: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapErrorPassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("connection reset")
	assert.Equal(t, cause, MapError(cause))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("affected rows pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, CheckRowsAffected(stubResult{rows: 1}, store.ErrWordNotFound))
	})

	t.Run("zero rows return the caller's sentinel", func(t *testing.T) {
		t.Parallel()

		err := CheckRowsAffected(stubResult{rows: 0}, store.ErrWordNotFound)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrWordNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound, "specific sentinels stay inside the generic family")
	})

	t.Run("zero rows without a sentinel fall back to the generic error", func(t *testing.T) {
		t.Parallel()

		err := CheckRowsAffected(stubResult{rows: 0}, nil)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rows-affected failure is reported", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("driver does not support RowsAffected")
		err := CheckRowsAffected(stubResult{err: cause}, store.ErrWordNotFound)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil result is rejected", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, CheckRowsAffected(nil, store.ErrWordNotFound))
	})
}
