package postgres

import (
	"context"
	"fmt"
)

// Migrate crea el esquema. Se puede llamar varias veces: todo es IF NOT EXISTS.
// Las órdenes y los clientes los escribe el backend de la plataforma; este servicio
// solo los lee.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range migrations {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración fallida: %w\nsentencia: %s", err, stmt)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS vendors (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL DEFAULT '',
		phone       TEXT NOT NULL DEFAULT '',
		address     TEXT NOT NULL DEFAULT '',
		commission  DOUBLE PRECISION,
		status      TEXT NOT NULL DEFAULT 'active',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS subscriptions (
		id          TEXT PRIMARY KEY,
		vendor_id   TEXT NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
		plan_name   TEXT NOT NULL,
		features    TEXT[] NOT NULL DEFAULT '{}',
		is_active   BOOLEAN NOT NULL DEFAULT true,
		expires_at  TIMESTAMPTZ,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_subscriptions_vendor ON subscriptions(vendor_id, is_active)`,

	`CREATE TABLE IF NOT EXISTS users (
		id             TEXT PRIMARY KEY,
		vendor_id      TEXT NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
		email          TEXT NOT NULL UNIQUE,
		password_hash  TEXT NOT NULL,
		name           TEXT NOT NULL,
		role           TEXT NOT NULL CHECK (role IN ('admin', 'vendor')),
		status         TEXT NOT NULL DEFAULT 'active',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS customers (
		id     TEXT PRIMARY KEY,
		name   TEXT,
		phone  TEXT,
		email  TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		id               TEXT PRIMARY KEY,
		vendor_id        TEXT NOT NULL REFERENCES vendors(id),
		customer_id      TEXT REFERENCES customers(id) ON DELETE SET NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		sub_total        NUMERIC(14,2) NOT NULL,
		delivery_charge  NUMERIC(14,2),
		coupon_discount  NUMERIC(14,2),
		order_status     TEXT NOT NULL,
		payment_method   TEXT,
		payment_status   TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_vendor_created ON orders(vendor_id, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS order_items (
		order_id    TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		line_no     INTEGER NOT NULL,
		product_id  TEXT,
		name        TEXT NOT NULL,
		quantity    INTEGER NOT NULL DEFAULT 1,
		price       NUMERIC(14,2) NOT NULL DEFAULT 0,
		PRIMARY KEY (order_id, line_no)
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		id            TEXT PRIMARY KEY,
		vendor_id     TEXT NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		category      TEXT NOT NULL DEFAULT '',
		price         NUMERIC(14,2) NOT NULL DEFAULT 0,
		is_available  BOOLEAN NOT NULL DEFAULT true,
		is_veg        BOOLEAN NOT NULL DEFAULT false,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_vendor ON products(vendor_id, created_at DESC)`,
}
