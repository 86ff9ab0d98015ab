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

type RepairServiceFilter struct {
	Search     string
	Category   string
	MitraID    *uuid.UUID
	MinPrice   *int64
	MaxPrice   *int64
	ActiveOnly bool
}

type RepairServiceRepository interface {
	Create(ctx context.Context, service *entity.RepairService) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RepairService, error)
	FindAll(ctx context.Context, filter RepairServiceFilter, limit, offset int) ([]*entity.RepairService, error)
	CountAll(ctx context.Context, filter RepairServiceFilter) (int64, error)
	Update(ctx context.Context, service *entity.RepairService) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repairServiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRepairServiceRepository(db database.PgxIface, log *zap.Logger) RepairServiceRepository {
	return &repairServiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "repair_service")),
	}
}

const repairServiceColumns = `id, mitra_id, name, description, category, min_price, max_price, is_active, created_at, updated_at, deleted_at`

func scanRepairService(row pgx.Row) (*entity.RepairService, error) {
	var svc entity.RepairService
	err := row.Scan(
		&svc.ID,
		&svc.MitraID,
		&svc.Name,
		&svc.Description,
		&svc.Category,
		&svc.MinPrice,
		&svc.MaxPrice,
		&svc.IsActive,
		&svc.CreatedAt,
		&svc.UpdatedAt,
		&svc.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *repairServiceRepository) Create(ctx context.Context, service *entity.RepairService) error {
	query := `
		INSERT INTO repair_services (id, mitra_id, name, description, category, min_price, max_price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		service.ID,
		service.MitraID,
		service.Name,
		service.Description,
		service.Category,
		service.MinPrice,
		service.MaxPrice,
		service.IsActive,
		service.CreatedAt,
		service.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create repair service",
			zap.Error(err),
			zap.String("name", service.Name),
		)
		return fmt.Errorf("create repair service %s: %w", service.Name, err)
	}

	return nil
}

func (r *repairServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RepairService, error) {
	query := `SELECT ` + repairServiceColumns + ` FROM repair_services WHERE id = $1 AND deleted_at IS NULL`

	service, err := scanRepairService(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find repair service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("find repair service by ID %s: %w", id.String(), err)
	}

	return service, nil
}

func buildRepairServiceFilter(qb *strings.Builder, args []interface{}, filter RepairServiceFilter) []interface{} {
	if filter.Search != "" {
		qb.WriteString(fmt.Sprintf(" AND name ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}

	if filter.Category != "" {
		qb.WriteString(fmt.Sprintf(" AND category = $%d", len(args)+1))
		args = append(args, filter.Category)
	}

	if filter.MitraID != nil {
		qb.WriteString(fmt.Sprintf(" AND mitra_id = $%d", len(args)+1))
		args = append(args, *filter.MitraID)
	}

	if filter.MinPrice != nil {
		qb.WriteString(fmt.Sprintf(" AND max_price >= $%d", len(args)+1))
		args = append(args, *filter.MinPrice)
	}

	if filter.MaxPrice != nil {
		qb.WriteString(fmt.Sprintf(" AND min_price <= $%d", len(args)+1))
		args = append(args, *filter.MaxPrice)
	}

	if filter.ActiveOnly {
		qb.WriteString(" AND is_active = TRUE")
	}

	return args
}

func (r *repairServiceRepository) FindAll(ctx context.Context, filter RepairServiceFilter, limit, offset int) ([]*entity.RepairService, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT ` + repairServiceColumns + ` FROM repair_services WHERE deleted_at IS NULL`)

	args := buildRepairServiceFilter(&qb, []interface{}{}, filter)

	qb.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		r.log.Error("Failed to find repair services",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find repair services: %w", err)
	}
	defer rows.Close()

	var services []*entity.RepairService
	for rows.Next() {
		service, err := scanRepairService(rows)
		if err != nil {
			r.log.Error("Failed to scan repair service row", zap.Error(err))
			return nil, fmt.Errorf("scan repair service row: %w", err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate repair service rows: %w", err)
	}

	return services, nil
}

func (r *repairServiceRepository) CountAll(ctx context.Context, filter RepairServiceFilter) (int64, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT COUNT(*) FROM repair_services WHERE deleted_at IS NULL`)

	args := buildRepairServiceFilter(&qb, []interface{}{}, filter)

	var total int64
	if err := r.db.QueryRow(ctx, qb.String(), args...).Scan(&total); err != nil {
		r.log.Error("Failed to count repair services", zap.Error(err))
		return 0, fmt.Errorf("count repair services: %w", err)
	}

	return total, nil
}

func (r *repairServiceRepository) Update(ctx context.Context, service *entity.RepairService) error {
	query := `
		UPDATE repair_services
		SET name = $2, description = $3, category = $4, min_price = $5,
		    max_price = $6, is_active = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		service.ID,
		service.Name,
		service.Description,
		service.Category,
		service.MinPrice,
		service.MaxPrice,
		service.IsActive,
		service.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update repair service",
			zap.Error(err),
			zap.String("service_id", service.ID.String()),
		)
		return fmt.Errorf("update repair service %s: %w", service.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("repair service %s not found", service.ID.String())
	}

	return nil
}

func (r *repairServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE repair_services SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete repair service", zap.Error(err), zap.String("service_id", id.String()))
		return fmt.Errorf("delete repair service %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("repair service %s not found", id.String())
	}

	r.log.Info("Repair service deleted", zap.String("service_id", id.String()))
	return nil
}
