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

type RentalItemFilter struct {
	Search            string
	Category          string
	StockStatus       string
	LowStockThreshold int
	ActiveOnly        bool
}

type RentalItemRepository interface {
	Create(ctx context.Context, item *entity.RentalItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RentalItem, error)
	FindAll(ctx context.Context, filter RentalItemFilter, limit, offset int) ([]*entity.RentalItem, error)
	CountAll(ctx context.Context, filter RentalItemFilter) (int64, error)
	AggregateStock(ctx context.Context) (*StockAggregate, error)
	Update(ctx context.Context, item *entity.RentalItem) error
	DecrementStock(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementStock(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type rentalItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRentalItemRepository(db database.PgxIface, log *zap.Logger) RentalItemRepository {
	return &rentalItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "rental_item")),
	}
}

const rentalItemColumns = `id, name, description, category, price_per_day, stock, is_active, created_at, updated_at, deleted_at`

func scanRentalItem(row pgx.Row) (*entity.RentalItem, error) {
	var item entity.RentalItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Category,
		&item.PricePerDay,
		&item.Stock,
		&item.IsActive,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *rentalItemRepository) Create(ctx context.Context, item *entity.RentalItem) error {
	query := `
		INSERT INTO rental_items (id, name, description, category, price_per_day, stock, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Category,
		item.PricePerDay,
		item.Stock,
		item.IsActive,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create rental item",
			zap.Error(err),
			zap.String("name", item.Name),
		)
		return fmt.Errorf("create rental item %s: %w", item.Name, err)
	}

	return nil
}

func (r *rentalItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RentalItem, error) {
	query := `SELECT ` + rentalItemColumns + ` FROM rental_items WHERE id = $1 AND deleted_at IS NULL`

	item, err := scanRentalItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find rental item by ID",
			zap.Error(err),
			zap.String("rental_item_id", id.String()),
		)
		return nil, fmt.Errorf("find rental item by ID %s: %w", id.String(), err)
	}

	return item, nil
}

func buildRentalItemFilter(qb *strings.Builder, args []interface{}, filter RentalItemFilter) []interface{} {
	if filter.Search != "" {
		qb.WriteString(fmt.Sprintf(" AND name ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}

	if filter.Category != "" {
		qb.WriteString(fmt.Sprintf(" AND category = $%d", len(args)+1))
		args = append(args, filter.Category)
	}

	if filter.ActiveOnly {
		qb.WriteString(" AND is_active = TRUE")
	}

	args = appendStockPredicate(qb, args, filter.StockStatus, filter.LowStockThreshold)

	return args
}

func (r *rentalItemRepository) FindAll(ctx context.Context, filter RentalItemFilter, limit, offset int) ([]*entity.RentalItem, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT ` + rentalItemColumns + ` FROM rental_items WHERE deleted_at IS NULL`)

	args := buildRentalItemFilter(&qb, []interface{}{}, filter)

	qb.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		r.log.Error("Failed to find rental items",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find rental items: %w", err)
	}
	defer rows.Close()

	var items []*entity.RentalItem
	for rows.Next() {
		item, err := scanRentalItem(rows)
		if err != nil {
			r.log.Error("Failed to scan rental item row", zap.Error(err))
			return nil, fmt.Errorf("scan rental item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rental item rows: %w", err)
	}

	return items, nil
}

func (r *rentalItemRepository) CountAll(ctx context.Context, filter RentalItemFilter) (int64, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT COUNT(*) FROM rental_items WHERE deleted_at IS NULL`)

	args := buildRentalItemFilter(&qb, []interface{}{}, filter)

	var total int64
	if err := r.db.QueryRow(ctx, qb.String(), args...).Scan(&total); err != nil {
		r.log.Error("Failed to count rental items", zap.Error(err))
		return 0, fmt.Errorf("count rental items: %w", err)
	}

	return total, nil
}

func (r *rentalItemRepository) AggregateStock(ctx context.Context) (*StockAggregate, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE stock > 0),
		       COUNT(*) FILTER (WHERE stock <= 0)
		FROM rental_items
		WHERE deleted_at IS NULL
	`

	var agg StockAggregate
	err := r.db.QueryRow(ctx, query).Scan(&agg.Total, &agg.Available, &agg.Unavailable)
	if err != nil {
		r.log.Error("Failed to aggregate rental stock", zap.Error(err))
		return nil, fmt.Errorf("aggregate rental stock: %w", err)
	}

	return &agg, nil
}

func (r *rentalItemRepository) Update(ctx context.Context, item *entity.RentalItem) error {
	query := `
		UPDATE rental_items
		SET name = $2, description = $3, category = $4, price_per_day = $5,
		    stock = $6, is_active = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Category,
		item.PricePerDay,
		item.Stock,
		item.IsActive,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update rental item",
			zap.Error(err),
			zap.String("rental_item_id", item.ID.String()),
		)
		return fmt.Errorf("update rental item %s: %w", item.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rental item %s not found", item.ID.String())
	}

	return nil
}

// DecrementStock: satu unit per booking, atomik dengan floor check
// supaya dua request paralel tidak bisa bikin stok negatif
func (r *rentalItemRepository) DecrementStock(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE rental_items
		SET stock = stock - 1, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND stock > 0
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to decrement rental stock",
			zap.Error(err),
			zap.String("rental_item_id", id.String()),
		)
		return false, fmt.Errorf("decrement stock for rental item %s: %w", id.String(), err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *rentalItemRepository) IncrementStock(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE rental_items
		SET stock = stock + 1, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		r.log.Error("Failed to increment rental stock",
			zap.Error(err),
			zap.String("rental_item_id", id.String()),
		)
		return fmt.Errorf("increment stock for rental item %s: %w", id.String(), err)
	}

	return nil
}

func (r *rentalItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE rental_items SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete rental item", zap.Error(err), zap.String("rental_item_id", id.String()))
		return fmt.Errorf("delete rental item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rental item %s not found", id.String())
	}

	r.log.Info("Rental item deleted", zap.String("rental_item_id", id.String()))
	return nil
}
