package entity

// Product adalah sparepart yang dijual di katalog
type Product struct {
	Base
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Brand       string  `db:"brand"`
	Category    string  `db:"category"`
	Price       int64   `db:"price"`
	Stock       int     `db:"stock"`
	IsActive    bool    `db:"is_active"`
}
