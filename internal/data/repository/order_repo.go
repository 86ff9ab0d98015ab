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

type OrderFilter struct {
	Status       *string
	Kind         *string
	UserID       *uuid.UUID
	TechnicianID *uuid.UUID
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	FindAll(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, error)
	CountAll(ctx context.Context, filter OrderFilter) (int64, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to entity.OrderStatus) (bool, error)
	AssignTechnician(ctx context.Context, orderID, technicianID uuid.UUID) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, order_number, user_id, technician_id, kind, total, deposit, status, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.UserID,
		&order.TechnicianID,
		&order.Kind,
		&order.Total,
		&order.Deposit,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_number, user_id, technician_id, kind, total, deposit, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.OrderNumber,
		order.UserID,
		order.TechnicianID,
		order.Kind,
		order.Total,
		order.Deposit,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order %s: %w", order.OrderNumber, err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return order, nil
}

func (r *orderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`

	order, err := scanOrder(r.db.QueryRow(ctx, query, orderNumber))
	if err != nil {
		r.log.Error("Failed to find order by order number",
			zap.Error(err),
			zap.String("order_number", orderNumber),
		)
		return nil, fmt.Errorf("find order by number %s: %w", orderNumber, err)
	}

	return order, nil
}

func buildOrderFilter(qb *strings.Builder, args []interface{}, filter OrderFilter) []interface{} {
	if filter.Status != nil && *filter.Status != "" {
		qb.WriteString(fmt.Sprintf(" AND status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}

	if filter.Kind != nil && *filter.Kind != "" {
		qb.WriteString(fmt.Sprintf(" AND kind = $%d", len(args)+1))
		args = append(args, *filter.Kind)
	}

	if filter.UserID != nil {
		qb.WriteString(fmt.Sprintf(" AND user_id = $%d", len(args)+1))
		args = append(args, *filter.UserID)
	}

	if filter.TechnicianID != nil {
		qb.WriteString(fmt.Sprintf(" AND technician_id = $%d", len(args)+1))
		args = append(args, *filter.TechnicianID)
	}

	return args
}

func (r *orderRepository) FindAll(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT ` + orderColumns + ` FROM orders WHERE TRUE`)

	args := buildOrderFilter(&qb, []interface{}{}, filter)

	qb.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		r.log.Error("Failed to find orders",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) CountAll(ctx context.Context, filter OrderFilter) (int64, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT COUNT(*) FROM orders WHERE TRUE`)

	args := buildOrderFilter(&qb, []interface{}{}, filter)

	var total int64
	if err := r.db.QueryRow(ctx, qb.String(), args...).Scan(&total); err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return total, nil
}

// UpdateStatus pakai compare-and-set pada status lama supaya dua update
// paralel tidak saling timpa; return false kalau status sudah berubah
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to entity.OrderStatus) (bool, error) {
	query := `UPDATE orders SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, orderID, from, to)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update order %s status to %s: %w", orderID.String(), string(to), err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *orderRepository) AssignTechnician(ctx context.Context, orderID, technicianID uuid.UUID) error {
	query := `UPDATE orders SET technician_id = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, orderID, technicianID)
	if err != nil {
		r.log.Error("Failed to assign technician",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
			zap.String("technician_id", technicianID.String()),
		)
		return fmt.Errorf("assign technician to order %s: %w", orderID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", orderID.String())
	}

	return nil
}
