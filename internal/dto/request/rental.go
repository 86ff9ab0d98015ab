package request

type RentalItemRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category" validate:"required"`
	PricePerDay int64   `json:"price_per_day" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// RentalQuoteRequest: duration wajib diisi hanya saat duration_type=custom,
// range valid 1..365 hari
type RentalQuoteRequest struct {
	DurationType string `json:"duration_type" validate:"required,oneof=daily weekly monthly custom"`
	Duration     int    `json:"duration" validate:"omitempty,min=1,max=365"`
}
