package repository

import (
	"context"
	"fmt"

	"servisku/internal/data/entity"
	"servisku/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderItemRepository interface {
	CreateBatch(ctx context.Context, items []*entity.OrderItem) error
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
}

type orderItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderItemRepository(db database.PgxIface, log *zap.Logger) OrderItemRepository {
	return &orderItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "order_item")),
	}
}

func (r *orderItemRepository) CreateBatch(ctx context.Context, items []*entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, service_id, rental_item_id, quantity, rental_days, unit_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for _, item := range items {
		_, err := r.db.Exec(ctx, query,
			item.ID,
			item.OrderID,
			item.ProductID,
			item.ServiceID,
			item.RentalItemID,
			item.Quantity,
			item.RentalDays,
			item.UnitPrice,
			item.Subtotal,
			item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create order item",
				zap.Error(err),
				zap.String("order_id", item.OrderID.String()),
			)
			return fmt.Errorf("create order item for order %s: %w", item.OrderID.String(), err)
		}
	}

	return nil
}

func (r *orderItemRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, service_id, rental_item_id, quantity, rental_days, unit_price, subtotal, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find order items",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find items for order %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ServiceID,
			&item.RentalItemID,
			&item.Quantity,
			&item.RentalDays,
			&item.UnitPrice,
			&item.Subtotal,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}

	return items, nil
}
