package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrations are idempotent and run in order on every start.
var migrations = []string{
	createPublishersTable,
	createBooksTable,
	createShopsTable,
	createStocksTable,
	createSalesTable,
}

func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

// Tables lists the schema in dependency order, parents first.
func Tables() []string {
	return []string{"publishers", "books", "shops", "stocks", "sales"}
}

const createPublishersTable = `
CREATE TABLE IF NOT EXISTS publishers (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_publishers_name ON publishers(name);
`

const createBooksTable = `
CREATE TABLE IF NOT EXISTS books (
  id SERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  publisher_id INTEGER REFERENCES publishers(id)
);

CREATE INDEX IF NOT EXISTS idx_books_publisher_id ON books(publisher_id);
`

const createShopsTable = `
CREATE TABLE IF NOT EXISTS shops (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL
);
`

const createStocksTable = `
CREATE TABLE IF NOT EXISTS stocks (
  id SERIAL PRIMARY KEY,
  book_id INTEGER NOT NULL REFERENCES books(id),
  shop_id INTEGER NOT NULL REFERENCES shops(id),
  count INTEGER NOT NULL CHECK (count >= 0)
);

CREATE INDEX IF NOT EXISTS idx_stocks_book_id ON stocks(book_id);
CREATE INDEX IF NOT EXISTS idx_stocks_shop_id ON stocks(shop_id);
`

const createSalesTable = `
CREATE TABLE IF NOT EXISTS sales (
  id SERIAL PRIMARY KEY,
  stock_id INTEGER NOT NULL REFERENCES stocks(id),
  price NUMERIC(10, 2) NOT NULL,
  date DATE NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sales_stock_id ON sales(stock_id);
`
