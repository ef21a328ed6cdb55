package storage_test

import (
	"context"
	"testing"
	"time"

	"go-roster/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupGormKV(t *testing.T) (*storage.Gorm, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return storage.NewGorm(gdb), mock
}

func TestGorm_Get(t *testing.T) {
	ctx := context.Background()
	cols := []string{"bucket", "payload", "updated_at"}

	t.Run("found", func(t *testing.T) {
		kv, mock := setupGormKV(t)
		mock.ExpectQuery(`SELECT \* FROM "kv_entries" WHERE bucket = \$1`).
			WillReturnRows(sqlmock.NewRows(cols).AddRow("employees", []byte(`[]`), time.Now()))

		v, ok, err := kv.Get(ctx, "employees")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[]`, string(v))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		kv, mock := setupGormKV(t)
		mock.ExpectQuery(`SELECT \* FROM "kv_entries" WHERE bucket = \$1`).
			WillReturnRows(sqlmock.NewRows(cols))

		_, ok, err := kv.Get(ctx, "auth_user")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing table", func(t *testing.T) {
		kv, mock := setupGormKV(t)
		mock.ExpectQuery(`SELECT \* FROM "kv_entries"`).
			WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "kv_entries" does not exist`})

		_, _, err := kv.Get(ctx, "employees")
		assert.ErrorIs(t, err, storage.ErrTableMissing)
	})
}

func TestGorm_SetDelete(t *testing.T) {
	ctx := context.Background()
	kv, mock := setupGormKV(t)

	mock.ExpectExec(`INSERT INTO "kv_entries" .* ON CONFLICT \("bucket"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "kv_entries" WHERE bucket = \$1`).
		WithArgs("auth_user").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, kv.Set(ctx, "auth_user", []byte(`{"id":"user_1"}`)))
	assert.NoError(t, kv.Delete(ctx, "auth_user"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
