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

// ProductFilter menerjemahkan pilihan filter UI jadi predicate SQL.
// Field kosong/nil berarti tidak memfilter.
type ProductFilter struct {
	Search            string
	Category          string
	Brand             string
	StockStatus       string // out_of_stock | low_stock | in_stock
	LowStockThreshold int
	MinPrice          *int64
	MaxPrice          *int64
	ActiveOnly        bool
}

// StockAggregate dihitung independen dari filter halaman aktif
type StockAggregate struct {
	Total       int64
	Available   int64
	Unavailable int64
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	CountAll(ctx context.Context, filter ProductFilter) (int64, error)
	AggregateStock(ctx context.Context) (*StockAggregate, error)
	Update(ctx context.Context, product *entity.Product) error
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) (bool, error)
	IncrementStock(ctx context.Context, id uuid.UUID, qty int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `id, name, description, brand, category, price, stock, is_active, created_at, updated_at, deleted_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Brand,
		&p.Category,
		&p.Price,
		&p.Stock,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, brand, category, price, stock, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Brand,
		product.Category,
		product.Price,
		product.Stock,
		product.IsActive,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_at IS NULL`

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return product, nil
}

// appendStockPredicate translates stock-status pilihan UI ke predicate SQL
func appendStockPredicate(qb *strings.Builder, args []interface{}, status string, threshold int) []interface{} {
	if threshold <= 0 {
		threshold = entity.DefaultLowStockThreshold
	}

	switch entity.StockStatus(status) {
	case entity.StockStatusOut:
		qb.WriteString(" AND stock <= 0")
	case entity.StockStatusLow:
		qb.WriteString(fmt.Sprintf(" AND stock > 0 AND stock <= $%d", len(args)+1))
		args = append(args, threshold)
	case entity.StockStatusIn:
		qb.WriteString(fmt.Sprintf(" AND stock > $%d", len(args)+1))
		args = append(args, threshold)
	}

	return args
}

func buildProductFilter(qb *strings.Builder, args []interface{}, filter ProductFilter) []interface{} {
	if filter.Search != "" {
		qb.WriteString(fmt.Sprintf(" AND (name ILIKE $%d OR brand ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}

	if filter.Category != "" {
		qb.WriteString(fmt.Sprintf(" AND category = $%d", len(args)+1))
		args = append(args, filter.Category)
	}

	if filter.Brand != "" {
		qb.WriteString(fmt.Sprintf(" AND brand = $%d", len(args)+1))
		args = append(args, filter.Brand)
	}

	if filter.MinPrice != nil {
		qb.WriteString(fmt.Sprintf(" AND price >= $%d", len(args)+1))
		args = append(args, *filter.MinPrice)
	}

	if filter.MaxPrice != nil {
		qb.WriteString(fmt.Sprintf(" AND price <= $%d", len(args)+1))
		args = append(args, *filter.MaxPrice)
	}

	if filter.ActiveOnly {
		qb.WriteString(" AND is_active = TRUE")
	}

	args = appendStockPredicate(qb, args, filter.StockStatus, filter.LowStockThreshold)

	return args
}

func (r *productRepository) FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT ` + productColumns + ` FROM products WHERE deleted_at IS NULL`)

	args := buildProductFilter(&qb, []interface{}{}, filter)

	qb.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		r.log.Error("Failed to find products",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) CountAll(ctx context.Context, filter ProductFilter) (int64, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT COUNT(*) FROM products WHERE deleted_at IS NULL`)

	args := buildProductFilter(&qb, []interface{}{}, filter)

	var total int64
	if err := r.db.QueryRow(ctx, qb.String(), args...).Scan(&total); err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return total, nil
}

// AggregateStock menghitung total/tersedia/habis tanpa terpengaruh filter halaman
func (r *productRepository) AggregateStock(ctx context.Context) (*StockAggregate, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE stock > 0),
		       COUNT(*) FILTER (WHERE stock <= 0)
		FROM products
		WHERE deleted_at IS NULL
	`

	var agg StockAggregate
	err := r.db.QueryRow(ctx, query).Scan(&agg.Total, &agg.Available, &agg.Unavailable)
	if err != nil {
		r.log.Error("Failed to aggregate product stock", zap.Error(err))
		return nil, fmt.Errorf("aggregate product stock: %w", err)
	}

	return &agg, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, brand = $4, category = $5,
		    price = $6, stock = $7, is_active = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Brand,
		product.Category,
		product.Price,
		product.Stock,
		product.IsActive,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", product.ID.String())
	}

	return nil
}

// DecrementStock mengurangi stok atomik dengan floor check,
// return false kalau stok tidak cukup (tidak ada row yang berubah)
func (r *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) (bool, error) {
	query := `
		UPDATE products
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND stock >= $2
	`

	result, err := r.db.Exec(ctx, query, id, qty)
	if err != nil {
		r.log.Error("Failed to decrement product stock",
			zap.Error(err),
			zap.String("product_id", id.String()),
			zap.Int("qty", qty),
		)
		return false, fmt.Errorf("decrement stock for product %s: %w", id.String(), err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *productRepository) IncrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	query := `
		UPDATE products
		SET stock = stock + $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	if _, err := r.db.Exec(ctx, query, id, qty); err != nil {
		r.log.Error("Failed to increment product stock",
			zap.Error(err),
			zap.String("product_id", id.String()),
			zap.Int("qty", qty),
		)
		return fmt.Errorf("increment stock for product %s: %w", id.String(), err)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE products SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", id.String()))
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", id.String())
	}

	r.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
