// Package migration creates the acta archive schema on first start.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type step struct {
	Name string
	SQL  string
}

const sentinelQuery = `SELECT to_regclass('public.actas') IS NOT NULL`

var steps = []step{
	{
		Name: "create_table_actas",
		SQL: `CREATE TABLE IF NOT EXISTS actas (
  id            UUID        PRIMARY KEY,
  filename      TEXT        NOT NULL,
  storage_path  TEXT        NOT NULL UNIQUE,
  size          BIGINT      NOT NULL CHECK (size >= 0),
  sha256        CHAR(64)    NOT NULL,
  content_type  TEXT        NOT NULL DEFAULT 'application/pdf',
  notify_status TEXT        NOT NULL DEFAULT 'pending'
                CHECK (notify_status IN ('pending', 'sent', 'failed', 'skipped')),
  notify_reason TEXT        NOT NULL DEFAULT '',
  notified_at   TIMESTAMPTZ,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_actas_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_actas_created_at ON actas (created_at DESC);`,
	},
	{
		Name: "create_index_actas_notify_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_actas_notify_status ON actas (notify_status);`,
	},
}

// EnsureMigrated creates the actas schema unless the sentinel table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"))

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return fmt.Errorf("check sentinel table: %w", err)
	}
	if exists {
		log.Info("db_migration_skip", zap.String("reason", "schema already exists"))
		return nil
	}

	log.Info("db_migration_start", zap.Int("steps", len(steps)))
	for _, s := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, s.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("migration_step", s.Name),
				zap.Error(err),
				zap.Duration("duration", time.Since(start)),
			)
			return fmt.Errorf("migration step %s failed: %w", s.Name, err)
		}
		log.Debug("db_migration_step",
			zap.String("migration_step", s.Name),
			zap.Duration("step_duration", time.Since(stepStart)),
		)
	}

	log.Info("db_migration_success", zap.Duration("duration", time.Since(start)))
	return nil
}
