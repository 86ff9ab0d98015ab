package repository

import (
	"context"
	"fmt"
	"strings"

	"servisku/internal/data/entity"
	"servisku/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MitraFilter struct {
	Search   string
	Approval *string
}

type MitraRepository interface {
	Create(ctx context.Context, mitra *entity.Mitra) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Mitra, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Mitra, error)
	FindAll(ctx context.Context, filter MitraFilter, limit, offset int) ([]*entity.Mitra, error)
	CountAll(ctx context.Context, filter MitraFilter) (int64, error)
	Update(ctx context.Context, mitra *entity.Mitra) error
	UpdateApproval(ctx context.Context, id uuid.UUID, approval entity.ApprovalStatus) error
	UpdateRating(ctx context.Context, id uuid.UUID, avgRating float64, reviewCount int) error
}

type mitraRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMitraRepository(db database.PgxIface, log *zap.Logger) MitraRepository {
	return &mitraRepository{
		db:  db,
		log: log.With(zap.String("repository", "mitra")),
	}
}

const mitraColumns = `id, user_id, business_name, description, address, latitude, longitude, approval_status, avg_rating, review_count, created_at, updated_at, deleted_at`

func scanMitra(row pgx.Row) (*entity.Mitra, error) {
	var m entity.Mitra
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.BusinessName,
		&m.Description,
		&m.Address,
		&m.Latitude,
		&m.Longitude,
		&m.Approval,
		&m.AvgRating,
		&m.ReviewCount,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mitraRepository) Create(ctx context.Context, mitra *entity.Mitra) error {
	query := `
		INSERT INTO mitras (id, user_id, business_name, description, address, latitude, longitude, approval_status, avg_rating, review_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		mitra.ID,
		mitra.UserID,
		mitra.BusinessName,
		mitra.Description,
		mitra.Address,
		mitra.Latitude,
		mitra.Longitude,
		mitra.Approval,
		mitra.AvgRating,
		mitra.ReviewCount,
		mitra.CreatedAt,
		mitra.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create mitra",
			zap.Error(err),
			zap.String("business_name", mitra.BusinessName),
		)
		return fmt.Errorf("create mitra %s: %w", mitra.BusinessName, err)
	}

	return nil
}

func (r *mitraRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Mitra, error) {
	query := `SELECT ` + mitraColumns + ` FROM mitras WHERE id = $1 AND deleted_at IS NULL`

	mitra, err := scanMitra(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find mitra by ID",
			zap.Error(err),
			zap.String("mitra_id", id.String()),
		)
		return nil, fmt.Errorf("find mitra by ID %s: %w", id.String(), err)
	}

	return mitra, nil
}

func (r *mitraRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Mitra, error) {
	query := `SELECT ` + mitraColumns + ` FROM mitras WHERE user_id = $1 AND deleted_at IS NULL`

	mitra, err := scanMitra(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		r.log.Error("Failed to find mitra by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find mitra by user ID %s: %w", userID.String(), err)
	}

	return mitra, nil
}

func buildMitraFilter(qb *strings.Builder, args []interface{}, filter MitraFilter) []interface{} {
	if filter.Search != "" {
		qb.WriteString(fmt.Sprintf(" AND business_name ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}

	if filter.Approval != nil && *filter.Approval != "" {
		qb.WriteString(fmt.Sprintf(" AND approval_status = $%d", len(args)+1))
		args = append(args, *filter.Approval)
	}

	return args
}

func (r *mitraRepository) FindAll(ctx context.Context, filter MitraFilter, limit, offset int) ([]*entity.Mitra, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT ` + mitraColumns + ` FROM mitras WHERE deleted_at IS NULL`)

	args := buildMitraFilter(&qb, []interface{}{}, filter)

	qb.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		r.log.Error("Failed to find mitras", zap.Error(err))
		return nil, fmt.Errorf("find mitras: %w", err)
	}
	defer rows.Close()

	var mitras []*entity.Mitra
	for rows.Next() {
		mitra, err := scanMitra(rows)
		if err != nil {
			r.log.Error("Failed to scan mitra row", zap.Error(err))
			return nil, fmt.Errorf("scan mitra row: %w", err)
		}
		mitras = append(mitras, mitra)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mitra rows: %w", err)
	}

	return mitras, nil
}

func (r *mitraRepository) CountAll(ctx context.Context, filter MitraFilter) (int64, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT COUNT(*) FROM mitras WHERE deleted_at IS NULL`)

	args := buildMitraFilter(&qb, []interface{}{}, filter)

	var total int64
	if err := r.db.QueryRow(ctx, qb.String(), args...).Scan(&total); err != nil {
		r.log.Error("Failed to count mitras", zap.Error(err))
		return 0, fmt.Errorf("count mitras: %w", err)
	}

	return total, nil
}

func (r *mitraRepository) Update(ctx context.Context, mitra *entity.Mitra) error {
	query := `
		UPDATE mitras
		SET business_name = $2, description = $3, address = $4,
		    latitude = $5, longitude = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		mitra.ID,
		mitra.BusinessName,
		mitra.Description,
		mitra.Address,
		mitra.Latitude,
		mitra.Longitude,
		mitra.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update mitra",
			zap.Error(err),
			zap.String("mitra_id", mitra.ID.String()),
		)
		return fmt.Errorf("update mitra %s: %w", mitra.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("mitra %s not found", mitra.ID.String())
	}

	return nil
}

func (r *mitraRepository) UpdateApproval(ctx context.Context, id uuid.UUID, approval entity.ApprovalStatus) error {
	query := `UPDATE mitras SET approval_status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, approval)
	if err != nil {
		r.log.Error("Failed to update mitra approval",
			zap.Error(err),
			zap.String("mitra_id", id.String()),
			zap.String("approval", string(approval)),
		)
		return fmt.Errorf("update approval for mitra %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("mitra %s not found", id.String())
	}

	return nil
}

func (r *mitraRepository) UpdateRating(ctx context.Context, id uuid.UUID, avgRating float64, reviewCount int) error {
	query := `UPDATE mitras SET avg_rating = $2, review_count = $3, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, avgRating, reviewCount)
	if err != nil {
		r.log.Error("Failed to update mitra rating",
			zap.Error(err),
			zap.String("mitra_id", id.String()),
		)
		return fmt.Errorf("update rating for mitra %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("mitra %s not found", id.String())
	}

	return nil
}
