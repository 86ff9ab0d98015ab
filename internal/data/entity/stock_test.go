package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		stock     int
		threshold int
		want      StockStatus
	}{
		{0, 5, StockStatusOut},
		{-1, 5, StockStatusOut},
		{1, 5, StockStatusLow},
		{3, 5, StockStatusLow},
		{5, 5, StockStatusLow},
		{6, 5, StockStatusIn},
		{10, 5, StockStatusIn},

		// Threshold dari config
		{8, 10, StockStatusLow},
		{11, 10, StockStatusIn},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyStock(tt.stock, tt.threshold),
			"stock=%d threshold=%d", tt.stock, tt.threshold)
	}
}

func TestClassifyStockDefaultThreshold(t *testing.T) {
	// Threshold nol atau negatif jatuh ke default 5
	assert.Equal(t, StockStatusLow, ClassifyStock(5, 0))
	assert.Equal(t, StockStatusIn, ClassifyStock(6, -1))
}
