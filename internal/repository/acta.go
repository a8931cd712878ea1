// Package repository contains data access abstractions for the acta archive.
// Implementations live in subpackages (e.g., postgres).
package repository

import (
	"context"
	"time"

	"actapi/internal/model"
)

// ActaRepository defines data access for archived actas using SQL queries only.
type ActaRepository interface {
	// Create inserts a new acta record and returns the stored row.
	Create(ctx context.Context, acta *model.Acta) (*model.Acta, error)

	// FindByID returns an acta by its ID. It returns sql.ErrNoRows when missing.
	FindByID(ctx context.Context, id string) (*model.Acta, error)

	// List returns a page of actas, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Acta], error)

	// UpdateNotification records the outcome of an email attempt.
	UpdateNotification(ctx context.Context, id string, n Notification) error

	// Delete removes an acta by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// Notification is the email outcome stored for an acta.
type Notification struct {
	Status string
	Reason string
	At     time.Time
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
