package entity

import (
	"github.com/google/uuid"
)

// RepairService adalah jasa servis yang ditawarkan mitra, harga berupa rentang
type RepairService struct {
	Base
	MitraID     uuid.UUID `db:"mitra_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Category    string    `db:"category"`
	MinPrice    int64     `db:"min_price"`
	MaxPrice    int64     `db:"max_price"`
	IsActive    bool      `db:"is_active"`
}
