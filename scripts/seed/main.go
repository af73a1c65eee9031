// Command seed creates the per-service schemas and loads a small demo
// dataset so the whole flow can be exercised locally.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type target struct {
	envVar string
	defDB  string
	schema string
	seed   func(ctx context.Context, pool *pgxpool.Pool) error
}

const customersSchema = `
CREATE TABLE IF NOT EXISTS customers (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);`

const catalogSchema = `
CREATE TABLE IF NOT EXISTS products (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	price_cents BIGINT NOT NULL,
	stock INTEGER NOT NULL,
	is_active BOOLEAN NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);`

const salesSchema = `
CREATE TABLE IF NOT EXISTS orders (
	id UUID PRIMARY KEY,
	customer_id UUID NOT NULL,
	status TEXT NOT NULL,
	total_cents BIGINT NOT NULL,
	canceled_reason TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS order_items (
	id UUID PRIMARY KEY,
	order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	product_id UUID NOT NULL,
	quantity INTEGER NOT NULL,
	unit_price_cents BIGINT NOT NULL,
	subtotal_cents BIGINT NOT NULL
);`

func seedCustomers(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO customers (id, name, email, status, created_at)
		VALUES ($1, $2, $3, 'active', $4)
		ON CONFLICT (email) DO NOTHING`,
		uuid.New(), "Maria Silva", "maria@example.com", time.Now().UTC().AddDate(0, -2, 0))
	return err
}

func seedCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	products := []struct {
		name  string
		cents int64
		stock int
	}{
		{"Notebook", 349900, 15},
		{"Wireless Mouse", 8990, 120},
		{"Mechanical Keyboard", 45900, 40},
	}
	for _, p := range products {
		if _, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, price_cents, stock, is_active, created_at)
			VALUES ($1, $2, $3, $4, TRUE, $5)`,
			uuid.New(), p.name, p.cents, p.stock, time.Now().UTC()); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "soa")
	pass := envOr("POSTGRES_PASSWORD", "soa_secret")

	targets := []target{
		{"CUSTOMER_DB_NAME", "customers_db", customersSchema, seedCustomers},
		{"CATALOG_DB_NAME", "catalog_db", catalogSchema, seedCatalog},
		{"SALES_DB_NAME", "sales_db", salesSchema, nil},
	}

	for _, t := range targets {
		db := envOr(t.envVar, t.defDB)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, port, db)

		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			log.Error("connect failed", slog.String("database", db), slog.String("error", err.Error()))
			os.Exit(1)
		}

		if _, err := pool.Exec(ctx, t.schema); err != nil {
			log.Error("schema failed", slog.String("database", db), slog.String("error", err.Error()))
			os.Exit(1)
		}
		if t.seed != nil {
			if err := t.seed(ctx, pool); err != nil {
				log.Error("seed failed", slog.String("database", db), slog.String("error", err.Error()))
				os.Exit(1)
			}
		}

		pool.Close()
		log.Info("database ready", slog.String("database", db))
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
