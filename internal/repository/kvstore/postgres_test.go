package kvstore

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		s := NewPostgresStore(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_documents WHERE key = $1`)).
			WithArgs("users").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

		data, err := s.Get(ctx, "users")
		assert.NoError(t, err)
		assert.Equal(t, []byte(`[]`), data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Key", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		s := NewPostgresStore(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_documents WHERE key = $1`)).
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err = s.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_Set(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	s := NewPostgresStore(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_documents`)).
		WithArgs("users", []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.Set(ctx, "users", []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Delete(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	s := NewPostgresStore(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_documents WHERE key = $1`)).
		WithArgs("users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.Delete(ctx, "users"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	s := NewPostgresStore(db)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_documents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, s.Migrate(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
