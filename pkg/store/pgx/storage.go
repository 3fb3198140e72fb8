package pgx

import (
	"context"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgxv5.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgxv5.Row
	SendBatch(ctx context.Context, b *pgxv5.Batch) pgxv5.BatchResults
	Begin(ctx context.Context) (pgxv5.Tx, error)
}

// SnapshotDBStorage implements store.SnapshotStorage on PostgreSQL. Derived
// state replacement runs inside a single transaction; a failed recompute
// never commits a partial snapshot.
type SnapshotDBStorage struct {
	conn pgxIConn
}

// NewSnapshotDBStorage creates a SnapshotDBStorage using an existing
// database connection or pool.
func NewSnapshotDBStorage(conn pgxIConn) *SnapshotDBStorage {
	return &SnapshotDBStorage{conn: conn}
}
