package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEnsureMigrated(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh database runs every step", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		core, logs := observer.New(zap.InfoLevel)

		mock.ExpectQuery("SELECT to_regclass").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS actas").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_actas_created_at").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_actas_notify_status").WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, EnsureMigrated(ctx, db, zap.New(core)))
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, 1, logs.FilterMessage("db_migration_success").Len())
	})

	t.Run("existing schema is skipped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		core, logs := observer.New(zap.InfoLevel)

		mock.ExpectQuery("SELECT to_regclass").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		require.NoError(t, EnsureMigrated(ctx, db, zap.New(core)))
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, 1, logs.FilterMessage("db_migration_skip").Len())
	})

	t.Run("failing step stops the run", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS actas").WillReturnError(errors.New("permission denied"))

		err = EnsureMigrated(ctx, db, zap.NewNop())
		assert.ErrorContains(t, err, "create_table_actas")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sentinel check error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").WillReturnError(errors.New("conn reset"))

		err = EnsureMigrated(ctx, db, zap.NewNop())
		assert.ErrorContains(t, err, "check sentinel table")
	})
}
