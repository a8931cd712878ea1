package postgres

import (
	"context"
	"database/sql"

	"actapi/internal/model"
	"actapi/internal/repository"
)

// ActaPostgres is a PostgreSQL implementation of repository.ActaRepository.
type ActaPostgres struct {
	db *sql.DB
}

// NewActaPostgres creates a new ActaPostgres repository.
func NewActaPostgres(db *sql.DB) *ActaPostgres {
	return &ActaPostgres{db: db}
}

var _ repository.ActaRepository = (*ActaPostgres)(nil)

const actaColumns = `id, filename, storage_path, size, sha256, content_type, notify_status, notify_reason, notified_at, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanActa(s scanner) (*model.Acta, error) {
	var (
		a          model.Acta
		notifiedAt sql.NullTime
	)
	if err := s.Scan(
		&a.ID,
		&a.Filename,
		&a.StoragePath,
		&a.Size,
		&a.SHA256,
		&a.ContentType,
		&a.NotifyStatus,
		&a.NotifyReason,
		&notifiedAt,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	if notifiedAt.Valid {
		t := notifiedAt.Time
		a.NotifiedAt = &t
	}
	return &a, nil
}

// Create inserts a new acta row and returns the stored record.
func (r *ActaPostgres) Create(ctx context.Context, a *model.Acta) (*model.Acta, error) {
	const q = `
		INSERT INTO actas (id, filename, storage_path, size, sha256, content_type, notify_status, notify_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + actaColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Filename,
		a.StoragePath,
		a.Size,
		a.SHA256,
		a.ContentType,
		a.NotifyStatus,
		a.NotifyReason,
		a.CreatedAt,
	)
	return scanActa(row)
}

// FindByID fetches a single acta by its ID.
func (r *ActaPostgres) FindByID(ctx context.Context, id string) (*model.Acta, error) {
	const q = `SELECT ` + actaColumns + ` FROM actas WHERE id = $1`
	return scanActa(r.db.QueryRowContext(ctx, q, id))
}

// List returns actas using LIMIT/OFFSET pagination and a total count.
func (r *ActaPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Acta], error) {
	const qCount = `SELECT COUNT(*) FROM actas`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + actaColumns + ` FROM actas ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Acta, 0)
	for rows.Next() {
		a, err := scanActa(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Acta]{Items: items, Total: total}, nil
}

// UpdateNotification stores the email outcome. It returns sql.ErrNoRows when the acta is missing.
func (r *ActaPostgres) UpdateNotification(ctx context.Context, id string, n repository.Notification) error {
	const q = `UPDATE actas SET notify_status = $2, notify_reason = $3, notified_at = $4 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, n.Status, n.Reason, n.At)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an acta by ID. It does not return an error if the row does not exist.
func (r *ActaPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM actas WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
