package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is what services depend on: the full query set plus a
// transaction runner. Mocked in internal/repository/mock.
type Store interface {
	Querier
	// InTx runs fn with a Querier bound to a single transaction and
	// commits when fn returns nil. Any error rolls everything back,
	// including outbox rows enlisted by fn.
	InTx(ctx context.Context, fn func(Querier) error) error
}

// SQLStore is the pgx-backed Store used by the binaries.
type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{Queries: New(pool), pool: pool}
}

func (s *SQLStore) InTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(New(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
