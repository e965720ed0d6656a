package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const postgresTable = "local_storage"

var _ Store = (*PostgresStore)(nil)

// PostgresStore persists items as rows of the local_storage table.
type PostgresStore struct {
	db   *sql.DB
	exec bob.Executor
}

// OpenPostgres connects with the given lib/pq DSN and applies migrations.
func OpenPostgres(ctx context.Context, connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := MigratePostgres(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return NewPostgresStore(db), nil
}

// NewPostgresStore wraps an already migrated database.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, exec: bob.NewDB(db)}
}

func (s *PostgresStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	query := psql.Select(
		sm.Columns("value"),
		sm.From(postgresTable),
		sm.Where(psql.Quote("key").EQ(psql.Arg(key))),
	)
	value, err := bob.One(ctx, s.exec, query, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("postgres get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *PostgresStore) SetItem(ctx context.Context, key, value string) error {
	query := psql.Insert(
		im.Into(postgresTable, "key", "value", "updated_at"),
		im.Values(psql.Arg(key), psql.Arg(value), psql.Raw("now()")),
		im.OnConflict("key").DoUpdate(
			im.SetExcluded("value", "updated_at"),
		),
	)
	if _, err := bob.Exec(ctx, s.exec, query); err != nil {
		return fmt.Errorf("postgres set %q: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) RemoveItem(ctx context.Context, key string) error {
	query := psql.Delete(
		dm.From(postgresTable),
		dm.Where(psql.Quote("key").EQ(psql.Arg(key))),
	)
	if _, err := bob.Exec(ctx, s.exec, query); err != nil {
		return fmt.Errorf("postgres remove %q: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	if _, err := bob.Exec(ctx, s.exec, psql.Delete(dm.From(postgresTable))); err != nil {
		return fmt.Errorf("postgres clear: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
