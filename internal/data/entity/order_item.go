package entity

import (
	"github.com/google/uuid"
)

// OrderItem merefer tepat satu dari product / repair service / rental item
type OrderItem struct {
	BaseSimple
	OrderID      uuid.UUID  `db:"order_id"`
	ProductID    *uuid.UUID `db:"product_id"`
	ServiceID    *uuid.UUID `db:"service_id"`
	RentalItemID *uuid.UUID `db:"rental_item_id"`
	Quantity     int        `db:"quantity"`
	RentalDays   int        `db:"rental_days"`
	UnitPrice    int64      `db:"unit_price"`
	Subtotal     int64      `db:"subtotal"`
}
