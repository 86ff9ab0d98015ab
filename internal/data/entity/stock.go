package entity

type StockStatus string

const (
	StockStatusOut StockStatus = "out_of_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusIn  StockStatus = "in_stock"
)

// DefaultLowStockThreshold dipakai kalau config tidak menimpa
const DefaultLowStockThreshold = 5

// ClassifyStock mengelompokkan stock ke out_of_stock / low_stock / in_stock
func ClassifyStock(stock, lowThreshold int) StockStatus {
	if lowThreshold <= 0 {
		lowThreshold = DefaultLowStockThreshold
	}

	switch {
	case stock <= 0:
		return StockStatusOut
	case stock <= lowThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}
