package feedback

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

func (r *PostgresRepository) Insert(ctx context.Context, fb *Feedback) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO feedbacks (
			item,
			feedback,
			rating,
			user_id
		)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`,
		fb.Item,
		fb.Text,
		fb.Rating,
		fb.UserID,
	).Scan(&fb.CreatedAt)

	if err != nil {
		return fmt.Errorf("%w: insert feedback: %v", db.ErrPersistence, err)
	}
	return nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Feedback, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			item,
			feedback,
			rating,
			user_id,
			created_at
		FROM feedbacks
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: list feedback: %v", db.ErrPersistence, err)
	}
	defer rows.Close()

	feedbacks := []*Feedback{}

	for rows.Next() {
		var fb Feedback
		if err := rows.Scan(
			&fb.Item,
			&fb.Text,
			&fb.Rating,
			&fb.UserID,
			&fb.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan feedback: %v", db.ErrPersistence, err)
		}
		feedbacks = append(feedbacks, &fb)
	}

	return feedbacks, nil
}
