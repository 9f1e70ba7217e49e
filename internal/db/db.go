package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/exaring/otelpgx"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
)

func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "", "mysql":
		return MySQL, nil
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	default:
		return "", fmt.Errorf("unknown db driver: %s", s)
	}
}

type Params struct {
	Dialect        Dialect
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	MaxOpenConns   int
	TracingEnabled bool
}

// Querier is implemented by both *DB and *Tx, so repo helpers can run inside or outside a transaction.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) *sql.Row
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
	InsertID(ctx context.Context, query, idColumn string, args ...any) (int64, error)
}

// DB is the shared data access handle. Queries are written with ? placeholders
// and rebound for the configured dialect.
type DB struct {
	runner
	sqlDB  *sql.DB
	pgPool *pgxpool.Pool
	name   string
}

// New wraps an already opened handle, used with sqlmock in tests.
func New(sqlDB *sql.DB, dialect Dialect) *DB {
	return &DB{
		runner: runner{q: sqlDB, dialect: dialect},
		sqlDB:  sqlDB,
	}
}

func Open(ctx context.Context, params Params) (*DB, error) {
	var (
		d   *DB
		err error
	)
	switch params.Dialect {
	case MySQL:
		d, err = openMySQL(params)
	case Postgres:
		d, err = openPostgres(ctx, params)
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", params.Dialect)
	}
	if err != nil {
		return nil, err
	}

	if params.MaxOpenConns > 0 {
		d.sqlDB.SetMaxOpenConns(params.MaxOpenConns)
		d.sqlDB.SetMaxIdleConns(params.MaxOpenConns)
	}
	d.sqlDB.SetConnMaxLifetime(5 * time.Minute)
	d.name = params.Name

	return d, nil
}

func openMySQL(params Params) (*DB, error) {
	cfg := mysql.NewConfig()
	cfg.User = params.User
	cfg.Passwd = params.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(params.Host, params.Port)
	cfg.DBName = params.Name
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	// UPDATE reports matched rows, so an unchanged row is not mistaken for a missing one
	cfg.ClientFoundRows = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}

	return New(sql.OpenDB(connector), MySQL), nil
}

func openPostgres(ctx context.Context, params Params) (*DB, error) {
	connURL := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(params.User, params.Password),
		Host:   net.JoinHostPort(params.Host, params.Port),
		Path:   params.Name,
	}
	if params.Password == "" {
		connURL.User = url.User(params.User)
	}

	poolConfig, err := pgxpool.ParseConfig(connURL.String())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	if params.MaxOpenConns > 0 {
		poolConfig.MaxConns = int32(params.MaxOpenConns)
	}
	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	d := New(stdlib.OpenDBFromPool(pool), Postgres)
	d.pgPool = pool
	return d, nil
}

func (d *DB) Ping(ctx context.Context) error {
	return d.sqlDB.PingContext(ctx)
}

// Collector exposes connection pool stats for prometheus.
func (d *DB) Collector() prometheus.Collector {
	if d.pgPool != nil {
		return pgxpoolprometheus.NewCollector(d.pgPool, map[string]string{"db_name": d.name})
	}
	return collectors.NewDBStatsCollector(d.sqlDB, d.name)
}

func (d *DB) Close() error {
	err := d.sqlDB.Close()
	if d.pgPool != nil {
		d.pgPool.Close()
	}
	return err
}

// InTx runs fn in a transaction, committed only when fn returns nil.
func (d *DB) InTx(ctx context.Context, fn func(tx *Tx) error) (err error) {
	sqlTx, err := d.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	tx := &Tx{runner: runner{q: sqlTx, dialect: d.dialect}}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type Tx struct {
	runner
}

type sqlQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type runner struct {
	q       sqlQuerier
	dialect Dialect
}

func (r runner) Dialect() Dialect {
	return r.dialect
}

func (r runner) Rebind(query string) string {
	return Rebind(r.dialect, query)
}

func (r runner) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := r.q.QueryContext(ctx, r.Rebind(query), args...)
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

func (r runner) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return r.q.QueryRowContext(ctx, r.Rebind(query), args...)
}

func (r runner) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := r.q.ExecContext(ctx, r.Rebind(query), args...)
	if err != nil {
		return nil, classify(err)
	}
	return res, nil
}

// InsertID runs an INSERT and returns the generated key of idColumn.
func (r runner) InsertID(ctx context.Context, query, idColumn string, args ...any) (int64, error) {
	if r.dialect == Postgres {
		var id int64
		err := r.q.QueryRowContext(ctx, r.Rebind(query)+" RETURNING "+idColumn, args...).Scan(&id)
		if err != nil {
			return 0, classify(err)
		}
		return id, nil
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// CheckAffected returns errNone when the statement matched no row.
func CheckAffected(res sql.Result, errNone error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return errNone
	}
	return nil
}
