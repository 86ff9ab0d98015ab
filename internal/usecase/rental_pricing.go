package usecase

import (
	"servisku/internal/dto/response"
)

type DurationType string

const (
	DurationDaily   DurationType = "daily"
	DurationWeekly  DurationType = "weekly"
	DurationMonthly DurationType = "monthly"
	DurationCustom  DurationType = "custom"
)

const (
	// Preset hari per tier: harian 1, mingguan 5 hari kerja, bulanan 20 hari kerja
	daysDaily   = 1
	daysWeekly  = 5
	daysMonthly = 20

	// Batas durasi custom
	minCustomDays = 1
	maxCustomDays = 365

	// Deposit flat: 10x tarif harian, berapapun durasinya (refundable)
	depositDays = 10
)

// discountPercentage per tier; custom selalu 0%
func discountPercentage(durationType DurationType) int {
	switch durationType {
	case DurationWeekly:
		return 10
	case DurationMonthly:
		return 20
	default:
		return 0
	}
}

// actualDays: tier preset pakai jumlah hari tetap (pindah dari custom ke
// preset me-reset durasi), custom di-clamp ke [1, 365]
func actualDays(durationType DurationType, customDuration int) int {
	switch durationType {
	case DurationDaily:
		return daysDaily
	case DurationWeekly:
		return daysWeekly
	case DurationMonthly:
		return daysMonthly
	default:
		if customDuration < minCustomDays {
			return minCustomDays
		}
		if customDuration > maxCustomDays {
			return maxCustomDays
		}
		return customDuration
	}
}

// CalculateRentalQuote menghitung rincian harga sewa. Pure function:
// input sama selalu menghasilkan output sama, tanpa side effect.
//
// Diskon dihitung dari base price sebelum diskon (tidak compound),
// dibulatkan round-half-up. Semua nilai rupiah utuh.
func CalculateRentalQuote(pricePerDay int64, durationType DurationType, customDuration int) response.RentalQuoteResponse {
	days := actualDays(durationType, customDuration)
	pct := discountPercentage(durationType)

	basePrice := pricePerDay * int64(days)
	discount := (basePrice*int64(pct) + 50) / 100
	subtotal := basePrice - discount
	deposit := pricePerDay * depositDays

	return response.RentalQuoteResponse{
		ActualDays:         days,
		BasePrice:          basePrice,
		Discount:           discount,
		DiscountPercentage: pct,
		Subtotal:           subtotal,
		Deposit:            deposit,
		Total:              subtotal + deposit,
	}
}

// ValidDurationType cek nilai duration_type dari query string
func ValidDurationType(value string) bool {
	switch DurationType(value) {
	case DurationDaily, DurationWeekly, DurationMonthly, DurationCustom:
		return true
	}
	return false
}
