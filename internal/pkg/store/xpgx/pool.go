package xpgx

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool wraps pgxpool with squirrel-aware helpers so the store layer never
// touches raw SQL strings.
type Pool struct {
	*pgxpool.Pool
}

// Dial opens a pool and pings it with exponential backoff, so the service
// survives the database coming up slightly later than it does.
func Dial(ctx context.Context, dsn string) (*Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second

	err = backoff.Retry(func() error {
		return pool.Ping(ctx)
	}, backoff.WithContext(bo, ctx))
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &Pool{pool}, nil
}

// Getx executes the query and scans a single row into dest.
func (p *Pool) Getx(ctx context.Context, dest interface{}, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return pgxscan.Get(ctx, p.Pool, dest, sql, args...)
}

// Selectx executes the query and scans all rows into dest (a pointer to slice).
func (p *Pool) Selectx(ctx context.Context, dest interface{}, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return pgxscan.Select(ctx, p.Pool, dest, sql, args...)
}

// Execx executes a statement that returns no rows.
func (p *Pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}

	return p.Pool.Exec(ctx, sql, args...)
}
