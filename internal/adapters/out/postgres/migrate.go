package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"seller/internal/adapters/out/postgres/orderrepo"
	"seller/internal/adapters/out/postgres/productrepo"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Migrate creates or updates product_info, order_master and order_detail.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
	)
}

// EnsureDatabase connects to adminDSN (usually the "postgres" maintenance
// database) through lib/pq and creates the database name when it is missing.
func EnsureDatabase(ctx context.Context, adminDSN, name string) error {
	if name == "" {
		return errors.New("database name is empty")
	}

	conn, err := sql.Open("postgres", adminDSN)
	if err != nil {
		return fmt.Errorf("open admin connection: %w", err)
	}
	defer conn.Close()

	var exists bool
	err = conn.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %q: %w", name, err)
	}
	if exists {
		return nil
	}

	if _, err = conn.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		var pqErr *pq.Error
		// duplicate_database: another instance created it first.
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			return nil
		}
		return fmt.Errorf("create database %q: %w", name, err)
	}

	return nil
}
