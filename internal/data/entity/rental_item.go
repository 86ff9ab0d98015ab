package entity

// RentalItem adalah alat yang disewakan dengan tarif per hari
type RentalItem struct {
	Base
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Category    string  `db:"category"`
	PricePerDay int64   `db:"price_per_day"`
	Stock       int     `db:"stock"`
	IsActive    bool    `db:"is_active"`
}
