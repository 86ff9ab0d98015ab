package response

import (
	"time"

	"servisku/internal/data/entity"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	StockStatus string    `json:"stock_status"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// StockAggregateResponse: hitungan agregat lepas dari filter halaman
type StockAggregateResponse struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	Unavailable int64 `json:"unavailable"`
}

func ProductToResponse(product *entity.Product, lowStockThreshold int) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Brand:       product.Brand,
		Category:    product.Category,
		Price:       product.Price,
		Stock:       product.Stock,
		StockStatus: string(entity.ClassifyStock(product.Stock, lowStockThreshold)),
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
	}
}
