package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCalculateRentalQuoteWeekly: sewa mingguan 5 hari dengan diskon 10%
func TestCalculateRentalQuoteWeekly(t *testing.T) {
	quote := CalculateRentalQuote(50000, DurationWeekly, 0)

	assert.Equal(t, 5, quote.ActualDays)
	assert.Equal(t, int64(250000), quote.BasePrice)
	assert.Equal(t, int64(25000), quote.Discount)
	assert.Equal(t, 10, quote.DiscountPercentage)
	assert.Equal(t, int64(225000), quote.Subtotal)
	assert.Equal(t, int64(500000), quote.Deposit)
	assert.Equal(t, int64(725000), quote.Total)
}

// TestCalculateRentalQuoteCustom: durasi custom tanpa diskon
func TestCalculateRentalQuoteCustom(t *testing.T) {
	quote := CalculateRentalQuote(100000, DurationCustom, 3)

	assert.Equal(t, 3, quote.ActualDays)
	assert.Equal(t, int64(300000), quote.BasePrice)
	assert.Equal(t, int64(0), quote.Discount)
	assert.Equal(t, 0, quote.DiscountPercentage)
	assert.Equal(t, int64(300000), quote.Subtotal)
	assert.Equal(t, int64(1000000), quote.Deposit)
	assert.Equal(t, int64(1300000), quote.Total)
}

func TestCalculateRentalQuoteTiers(t *testing.T) {
	tests := []struct {
		name         string
		durationType DurationType
		duration     int
		wantDays     int
		wantPct      int
	}{
		{"daily selalu 1 hari", DurationDaily, 0, 1, 0},
		{"weekly selalu 5 hari", DurationWeekly, 0, 5, 10},
		{"monthly selalu 20 hari", DurationMonthly, 0, 20, 20},
		{"custom pakai durasi user", DurationCustom, 14, 14, 0},
		// Pindah dari custom ke preset me-reset durasi
		{"preset mengabaikan durasi custom", DurationWeekly, 30, 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := CalculateRentalQuote(10000, tt.durationType, tt.duration)
			assert.Equal(t, tt.wantDays, quote.ActualDays)
			assert.Equal(t, tt.wantPct, quote.DiscountPercentage)
		})
	}
}

// TestCalculateRentalQuoteClamp: durasi custom di-clamp ke [1, 365]
func TestCalculateRentalQuoteClamp(t *testing.T) {
	low := CalculateRentalQuote(10000, DurationCustom, 0)
	assert.Equal(t, 1, low.ActualDays)

	negative := CalculateRentalQuote(10000, DurationCustom, -7)
	assert.Equal(t, 1, negative.ActualDays)

	high := CalculateRentalQuote(10000, DurationCustom, 400)
	assert.Equal(t, 365, high.ActualDays)
}

// TestCalculateRentalQuoteRounding: diskon dibulatkan round-half-up
func TestCalculateRentalQuoteRounding(t *testing.T) {
	// base = 33 * 5 = 165, diskon 10% = 16.5 -> 17
	quote := CalculateRentalQuote(33, DurationWeekly, 0)
	assert.Equal(t, int64(165), quote.BasePrice)
	assert.Equal(t, int64(17), quote.Discount)
	assert.Equal(t, int64(148), quote.Subtotal)
}

// TestCalculateRentalQuoteDeposit: deposit selalu 10x tarif harian
func TestCalculateRentalQuoteDeposit(t *testing.T) {
	for _, dt := range []DurationType{DurationDaily, DurationWeekly, DurationMonthly, DurationCustom} {
		quote := CalculateRentalQuote(75000, dt, 100)
		assert.Equal(t, int64(750000), quote.Deposit, "deposit untuk %s", dt)
	}
}

// TestCalculateRentalQuoteDeterministic: input sama, output sama
func TestCalculateRentalQuoteDeterministic(t *testing.T) {
	a := CalculateRentalQuote(42000, DurationMonthly, 0)
	b := CalculateRentalQuote(42000, DurationMonthly, 0)
	assert.Equal(t, a, b)
}

func TestValidDurationType(t *testing.T) {
	assert.True(t, ValidDurationType("daily"))
	assert.True(t, ValidDurationType("weekly"))
	assert.True(t, ValidDurationType("monthly"))
	assert.True(t, ValidDurationType("custom"))
	assert.False(t, ValidDurationType("yearly"))
	assert.False(t, ValidDurationType(""))
}
