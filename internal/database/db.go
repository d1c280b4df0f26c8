package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookstore-report/internal/config"
)

// DB bundles the pgx pool with a gorm handle sharing the same connections.
type DB struct {
	Pool  *pgxpool.Pool
	Gorm  *gorm.DB
	sqlDB *sql.DB
}

// EnsureDatabaseExists connects to the maintenance database with the
// configured credentials and creates cfg.DBName if it is missing.
func EnsureDatabaseExists(ctx context.Context, cfg *config.Config) error {
	admin := *cfg
	admin.DBName = "postgres"

	log.Printf("Checking if database '%s' exists...", cfg.DBName)

	pool, err := pgxpool.New(ctx, admin.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := pool.QueryRow(ctx, query, cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		log.Printf("Database '%s' already exists", cfg.DBName)
		return nil
	}

	log.Printf("Database '%s' does not exist. Creating it...", cfg.DBName)
	// CREATE DATABASE cannot run inside a transaction or take a bind parameter
	createQuery := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{cfg.DBName}.Sanitize())
	if _, err := pool.Exec(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	log.Printf("Database '%s' created successfully", cfg.DBName)
	return nil
}

// Connect opens the pool for cfg and pings it.
func Connect(ctx context.Context, cfg *config.Config, level logger.LogLevel) (*DB, error) {
	log.Printf("Connecting to database: %s", cfg.RedactedDSN())
	return Open(ctx, cfg.DSN(), level)
}

// Open is Connect for an already-built connection string.
func Open(ctx context.Context, dsn string, level logger.LogLevel) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check your .env file): %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("failed to open gorm session: %w", err)
	}

	log.Println("Database connection pool established successfully")
	return &DB{Pool: pool, Gorm: gormDB, sqlDB: sqlDB}, nil
}

func (d *DB) Close() {
	if d == nil {
		return
	}
	if d.sqlDB != nil {
		d.sqlDB.Close()
	}
	if d.Pool != nil {
		d.Pool.Close()
		log.Println("Database connection pool closed")
	}
}
