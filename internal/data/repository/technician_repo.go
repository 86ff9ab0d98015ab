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

type TechnicianFilter struct {
	Search    string
	Specialty string
	Approval  *string
}

type TechnicianRepository interface {
	Create(ctx context.Context, technician *entity.Technician) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Technician, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Technician, error)
	FindAll(ctx context.Context, filter TechnicianFilter, limit, offset int) ([]*entity.Technician, error)
	CountAll(ctx context.Context, filter TechnicianFilter) (int64, error)
	UpdateApproval(ctx context.Context, id uuid.UUID, approval entity.ApprovalStatus) error
}

type technicianRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTechnicianRepository(db database.PgxIface, log *zap.Logger) TechnicianRepository {
	return &technicianRepository{
		db:  db,
		log: log.With(zap.String("repository", "technician")),
	}
}

const technicianColumns = `id, user_id, mitra_id, specialty, approval_status, created_at, updated_at, deleted_at`

func scanTechnician(row pgx.Row) (*entity.Technician, error) {
	var t entity.Technician
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.MitraID,
		&t.Specialty,
		&t.Approval,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *technicianRepository) Create(ctx context.Context, technician *entity.Technician) error {
	query := `
		INSERT INTO technicians (id, user_id, mitra_id, specialty, approval_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		technician.ID,
		technician.UserID,
		technician.MitraID,
		technician.Specialty,
		technician.Approval,
		technician.CreatedAt,
		technician.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create technician",
			zap.Error(err),
			zap.String("user_id", technician.UserID.String()),
		)
		return fmt.Errorf("create technician for user %s: %w", technician.UserID.String(), err)
	}

	return nil
}

func (r *technicianRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Technician, error) {
	query := `SELECT ` + technicianColumns + ` FROM technicians WHERE id = $1 AND deleted_at IS NULL`

	technician, err := scanTechnician(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find technician by ID",
			zap.Error(err),
			zap.String("technician_id", id.String()),
		)
		return nil, fmt.Errorf("find technician by ID %s: %w", id.String(), err)
	}

	return technician, nil
}

func (r *technicianRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Technician, error) {
	query := `SELECT ` + technicianColumns + ` FROM technicians WHERE user_id = $1 AND deleted_at IS NULL`

	technician, err := scanTechnician(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		r.log.Error("Failed to find technician by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find technician by user ID %s: %w", userID.String(), err)
	}

	return technician, nil
}

func buildTechnicianFilter(qb *strings.Builder, args []interface{}, filter TechnicianFilter) []interface{} {
	if filter.Search != "" {
		qb.WriteString(fmt.Sprintf(" AND specialty ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}

	if filter.Specialty != "" {
		qb.WriteString(fmt.Sprintf(" AND specialty = $%d", len(args)+1))
		args = append(args, filter.Specialty)
	}

	if filter.Approval != nil && *filter.Approval != "" {
		qb.WriteString(fmt.Sprintf(" AND approval_status = $%d", len(args)+1))
		args = append(args, *filter.Approval)
	}

	return args
}

func (r *technicianRepository) FindAll(ctx context.Context, filter TechnicianFilter, limit, offset int) ([]*entity.Technician, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT ` + technicianColumns + ` FROM technicians WHERE deleted_at IS NULL`)

	args := buildTechnicianFilter(&qb, []interface{}{}, filter)

	qb.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		r.log.Error("Failed to find technicians", zap.Error(err))
		return nil, fmt.Errorf("find technicians: %w", err)
	}
	defer rows.Close()

	var technicians []*entity.Technician
	for rows.Next() {
		technician, err := scanTechnician(rows)
		if err != nil {
			r.log.Error("Failed to scan technician row", zap.Error(err))
			return nil, fmt.Errorf("scan technician row: %w", err)
		}
		technicians = append(technicians, technician)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate technician rows: %w", err)
	}

	return technicians, nil
}

func (r *technicianRepository) CountAll(ctx context.Context, filter TechnicianFilter) (int64, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT COUNT(*) FROM technicians WHERE deleted_at IS NULL`)

	args := buildTechnicianFilter(&qb, []interface{}{}, filter)

	var total int64
	if err := r.db.QueryRow(ctx, qb.String(), args...).Scan(&total); err != nil {
		r.log.Error("Failed to count technicians", zap.Error(err))
		return 0, fmt.Errorf("count technicians: %w", err)
	}

	return total, nil
}

func (r *technicianRepository) UpdateApproval(ctx context.Context, id uuid.UUID, approval entity.ApprovalStatus) error {
	query := `UPDATE technicians SET approval_status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, approval)
	if err != nil {
		r.log.Error("Failed to update technician approval",
			zap.Error(err),
			zap.String("technician_id", id.String()),
			zap.String("approval", string(approval)),
		)
		return fmt.Errorf("update approval for technician %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("technician %s not found", id.String())
	}

	return nil
}
