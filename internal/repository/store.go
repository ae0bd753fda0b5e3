package repository

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repositories vends repositories bound to one handle, either the pool or a transaction.
type Repositories struct {
	db DBTX
}

// NewRepositories binds repositories to db.
func NewRepositories(db DBTX) Repositories {
	return Repositories{db: db}
}

func (r Repositories) Users() *UserRepository         { return NewUserRepository(r.db) }
func (r Repositories) Activities() *ActivityRepository { return NewActivityRepository(r.db) }
func (r Repositories) Entries() *EntryRepository       { return NewEntryRepository(r.db) }
func (r Repositories) Tokens() *TokenRepository        { return NewTokenRepository(r.db) }

// Store is the relational store: non-transactional repositories on the pool
// plus explicit transaction units.
type Store struct {
	Repositories
	db       *sql.DB
	readOpts *sql.TxOptions
}

// NewStore wraps db. The read-only hint is only passed to drivers that accept it.
func NewStore(db *sql.DB, driver string) *Store {
	s := &Store{
		Repositories: NewRepositories(db),
		db:           db,
	}
	if driver == DriverMySQL {
		s.readOpts = &sql.TxOptions{ReadOnly: true}
	}
	return s
}

// DB returns the underlying pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

// WithTx runs fn inside a read-write transaction. It commits when fn returns
// nil and rolls back when fn returns an error or panics.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx Repositories) error) error {
	return withTx(ctx, s.db, nil, fn)
}

// WithReadTx runs fn inside a transaction carrying the read-only hint.
func (s *Store) WithReadTx(ctx context.Context, fn func(ctx context.Context, tx Repositories) error) error {
	return withTx(ctx, s.db, s.readOpts, fn)
}

func withTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx Repositories) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, NewRepositories(tx))
	return err
}
