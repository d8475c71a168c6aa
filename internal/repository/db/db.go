// Package db contains the hand-maintained data-access layer: row
// models, one method per SQL statement, and the Store transaction
// runner services use to enlist several writes in one transaction.
package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// New binds the query set to a pool, connection, or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries implements Querier on top of a DBTX.
type Queries struct {
	db DBTX
}

// WithTx returns the query set bound to an open transaction.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}
