package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/db"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// --------------------------------------------------
// Insert Receipt
// --------------------------------------------------
func (r *PostgresRepository) Insert(ctx context.Context, receipt *Receipt) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO receipts (
			order_id,
			items,
			total,
			payment_method,
			details,
			user_id
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`,
		receipt.OrderID,
		receipt.Items,
		receipt.Total,
		receipt.PaymentMethod,
		receipt.Details,
		receipt.UserID,
	).Scan(&receipt.CreatedAt)

	if err != nil {
		return fmt.Errorf("%w: insert receipt: %v", db.ErrPersistence, err)
	}
	return nil
}

// --------------------------------------------------
// List Receipts (most recent first)
// --------------------------------------------------
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Receipt, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			order_id,
			items,
			total,
			payment_method,
			details,
			user_id,
			created_at
		FROM receipts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: list receipts: %v", db.ErrPersistence, err)
	}
	defer rows.Close()

	receipts := []*Receipt{}

	for rows.Next() {
		var rec Receipt
		if err := rows.Scan(
			&rec.OrderID,
			&rec.Items,
			&rec.Total,
			&rec.PaymentMethod,
			&rec.Details,
			&rec.UserID,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan receipt: %v", db.ErrPersistence, err)
		}
		receipts = append(receipts, &rec)
	}

	return receipts, nil
}
