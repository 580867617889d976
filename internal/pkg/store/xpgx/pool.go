package xpgx

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the store-facing query surface. Both the pgx pool and an open
// transaction satisfy it, so store code is written once and runs in either.
type Pool interface {
	Getx(ctx context.Context, dst interface{}, query squirrel.Sqlizer) error
	Selectx(ctx context.Context, dst interface{}, query squirrel.Sqlizer) error
	Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error)
	Exec(ctx context.Context, sql string, args []interface{}) (pgconn.CommandTag, error)
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Pool) error) error
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type pool struct {
	db querier
}

// Connect opens a pgx pool for the given DSN and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (Pool, error) {
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err = db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &pool{db: db}, nil
}

func (p *pool) Getx(ctx context.Context, dst interface{}, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}

	return pgxscan.Get(ctx, p.db, dst, sql, args...)
}

func (p *pool) Selectx(ctx context.Context, dst interface{}, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}

	return pgxscan.Select(ctx, p.db, dst, sql, args...)
}

func (p *pool) Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("query.ToSql: %w", err)
	}

	return p.db.Exec(ctx, sql, args...)
}

func (p *pool) Exec(ctx context.Context, sql string, args []interface{}) (pgconn.CommandTag, error) {
	return p.db.Exec(ctx, sql, args...)
}

// WithTx runs fn inside a transaction. Any error from fn rolls the
// transaction back; a nil return commits it.
func (p *pool) WithTx(ctx context.Context, fn func(ctx context.Context, tx Pool) error) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if err = fn(ctx, &pool{db: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}
