package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// Querier is satisfied by both *sql.Conn and *sql.Tx. Stores only ever see
// a Querier and never open or close connections themselves.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type Provider struct {
	DB *sql.DB
}

func NewProvider(db *sql.DB) *Provider {
	return &Provider{DB: db}
}

// WithConn runs fn on a dedicated connection and releases it afterwards.
func (p *Provider) WithConn(ctx context.Context, fn func(q Querier) error) error {
	conn, err := p.DB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer release(conn)

	return fn(conn)
}

// WithTx runs fn inside a transaction on a dedicated connection. The
// transaction commits only when fn returns nil and is rolled back on any
// error or panic.
func (p *Provider) WithTx(ctx context.Context, fn func(q Querier) error) error {
	conn, err := p.DB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer release(conn)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("Error rolling back transaction: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func release(conn *sql.Conn) {
	if err := conn.Close(); err != nil {
		log.Printf("Error releasing connection: %v", err)
	}
}
