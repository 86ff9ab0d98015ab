package response

import (
	"time"

	"servisku/internal/data/entity"
)

type RentalItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	PricePerDay int64     `json:"price_per_day"`
	Stock       int       `json:"stock"`
	StockStatus string    `json:"stock_status"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// RentalQuoteResponse adalah kontrak pricing yang dikonsumsi UI booking,
// semua nilai rupiah utuh (bukan sen)
type RentalQuoteResponse struct {
	ActualDays         int   `json:"actualDays"`
	BasePrice          int64 `json:"basePrice"`
	Discount           int64 `json:"discount"`
	DiscountPercentage int   `json:"discountPercentage"`
	Subtotal           int64 `json:"subtotal"`
	Deposit            int64 `json:"deposit"`
	Total              int64 `json:"total"`
}

func RentalItemToResponse(item *entity.RentalItem, lowStockThreshold int) RentalItemResponse {
	return RentalItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		PricePerDay: item.PricePerDay,
		Stock:       item.Stock,
		StockStatus: string(entity.ClassifyStock(item.Stock, lowStockThreshold)),
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
	}
}
