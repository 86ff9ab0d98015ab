package request

type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	Description *string `json:"description,omitempty"`
	Brand       string  `json:"brand" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       int64   `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ProductListRequest dibaca dari query string
type ProductListRequest struct {
	Search      string `json:"search"`
	Category    string `json:"category"`
	Brand       string `json:"brand"`
	StockStatus string `json:"stock_status" validate:"omitempty,oneof=out_of_stock low_stock in_stock"`
	MinPrice    *int64 `json:"min_price,omitempty"`
	MaxPrice    *int64 `json:"max_price,omitempty"`
}
