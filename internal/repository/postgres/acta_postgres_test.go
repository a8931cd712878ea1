package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"actapi/internal/model"
	"actapi/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var actaRowColumns = []string{
	"id", "filename", "storage_path", "size", "sha256", "content_type",
	"notify_status", "notify_reason", "notified_at", "created_at",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestActaPostgres_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActaPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	acta := &model.Acta{
		ID:           "test-uuid",
		Filename:     "Acta_Reunion.pdf",
		StoragePath:  "actas/test-uuid.pdf",
		Size:         2048,
		SHA256:       "abc123",
		ContentType:  "application/pdf",
		NotifyStatus: model.NotifyPending,
		CreatedAt:    now,
	}

	rows := sqlmock.NewRows(actaRowColumns).
		AddRow(acta.ID, acta.Filename, acta.StoragePath, acta.Size, acta.SHA256, acta.ContentType,
			acta.NotifyStatus, "", nil, acta.CreatedAt)

	mock.ExpectQuery("INSERT INTO actas").
		WithArgs(acta.ID, acta.Filename, acta.StoragePath, acta.Size, acta.SHA256, acta.ContentType,
			acta.NotifyStatus, acta.NotifyReason, acta.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, acta)

	require.NoError(t, err)
	assert.Equal(t, acta.ID, result.ID)
	assert.Equal(t, model.NotifyPending, result.NotifyStatus)
	assert.Nil(t, result.NotifiedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActaPostgres_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActaPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		notified := time.Date(2025, 6, 19, 10, 30, 0, 0, time.UTC)
		rows := sqlmock.NewRows(actaRowColumns).
			AddRow("test-id", "Acta_Reunion.pdf", "actas/test-id.pdf", 100, "abc", "application/pdf",
				model.NotifySent, "", notified, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM actas WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		acta, err := repo.FindByID(ctx, "test-id")

		require.NoError(t, err)
		assert.Equal(t, "test-id", acta.ID)
		require.NotNil(t, acta.NotifiedAt)
		assert.True(t, notified.Equal(*acta.NotifiedAt))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM actas WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		acta, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, acta)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActaPostgres_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActaPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM actas").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(actaRowColumns).
			AddRow("test-id", "Acta_Reunion.pdf", "actas/test-id.pdf", 100, "abc", "application/pdf",
				model.NotifySkipped, "", nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM actas ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM actas").
			WillReturnError(errors.New("db down"))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10})

		assert.Error(t, err)
		assert.Nil(t, res)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActaPostgres_UpdateNotification(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActaPostgres(db)
	ctx := context.Background()
	at := time.Date(2025, 6, 19, 10, 30, 0, 0, time.UTC)
	n := repository.Notification{Status: model.NotifyFailed, Reason: "notify: dial", At: at}

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE actas SET notify_status").
			WithArgs("test-id", n.Status, n.Reason, n.At).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateNotification(ctx, "test-id", n))
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectExec("UPDATE actas SET notify_status").
			WithArgs("missing", n.Status, n.Reason, n.At).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateNotification(ctx, "missing", n)
		assert.True(t, IsNoRowsError(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActaPostgres_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActaPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM actas WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
