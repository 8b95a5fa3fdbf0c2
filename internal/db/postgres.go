package db

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrPersistence marks any failure of the receipt/feedback sink.
// Repositories wrap their underlying errors with it so handlers can
// report a non-fatal persistence failure without leaking driver details.
var ErrPersistence = errors.New("persistence failure")

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates the canteen tables when they do not exist yet.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// RECEIPTS (append-only)
	// -------------------------------
	receiptsSQL := `
		CREATE TABLE IF NOT EXISTS receipts (
			id SERIAL PRIMARY KEY,
			order_id VARCHAR(16) UNIQUE NOT NULL,
			items TEXT NOT NULL,
			total INTEGER NOT NULL,
			payment_method VARCHAR(20) NOT NULL,
			details TEXT NULL,
			user_id VARCHAR(100) NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, receiptsSQL); err != nil {
		return err
	}

	// -------------------------------
	// FEEDBACKS (append-only)
	// -------------------------------
	feedbacksSQL := `
		CREATE TABLE IF NOT EXISTS feedbacks (
			id SERIAL PRIMARY KEY,
			item VARCHAR(100) NOT NULL,
			feedback TEXT NOT NULL,
			rating INTEGER NULL,
			user_id VARCHAR(100) NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, feedbacksSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
