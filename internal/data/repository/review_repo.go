package repository

import (
	"context"
	"fmt"

	"servisku/internal/data/entity"
	"servisku/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByMitraID(ctx context.Context, mitraID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByMitraID(ctx context.Context, mitraID uuid.UUID) (int64, error)
	ExistsForOrder(ctx context.Context, orderID, userID uuid.UUID) (bool, error)
	GetMitraReviewStats(ctx context.Context, mitraID uuid.UUID) (float64, int64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, mitra_id, user_id, order_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.MitraID,
		review.UserID,
		review.OrderID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("mitra_id", review.MitraID.String()),
			zap.String("user_id", review.UserID.String()),
		)
		return fmt.Errorf("create review for mitra %s: %w", review.MitraID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByMitraID(ctx context.Context, mitraID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, mitra_id, user_id, order_id, rating, comment, created_at
		FROM reviews
		WHERE mitra_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, mitraID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by mitra ID",
			zap.Error(err),
			zap.String("mitra_id", mitraID.String()),
		)
		return nil, fmt.Errorf("find reviews for mitra %s: %w", mitraID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.MitraID,
			&review.UserID,
			&review.OrderID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByMitraID(ctx context.Context, mitraID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE mitra_id = $1`, mitraID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews",
			zap.Error(err),
			zap.String("mitra_id", mitraID.String()),
		)
		return 0, fmt.Errorf("count reviews for mitra %s: %w", mitraID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) ExistsForOrder(ctx context.Context, orderID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE order_id = $1 AND user_id = $2`,
		orderID, userID,
	).Scan(&count)
	if err != nil {
		r.log.Error("Failed to check review existence",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return false, fmt.Errorf("check review for order %s: %w", orderID.String(), err)
	}

	return count > 0, nil
}

func (r *reviewRepository) GetMitraReviewStats(ctx context.Context, mitraID uuid.UUID) (float64, int64, error) {
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE mitra_id = $1`

	var avgRating float64
	var count int64
	if err := r.db.QueryRow(ctx, query, mitraID).Scan(&avgRating, &count); err != nil {
		r.log.Error("Failed to get review stats",
			zap.Error(err),
			zap.String("mitra_id", mitraID.String()),
		)
		return 0, 0, fmt.Errorf("get review stats for mitra %s: %w", mitraID.String(), err)
	}

	return avgRating, count, nil
}
