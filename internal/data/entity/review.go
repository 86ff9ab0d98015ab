package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	MitraID uuid.UUID `db:"mitra_id"`
	UserID  uuid.UUID `db:"user_id"`
	OrderID uuid.UUID `db:"order_id"`
	Rating  int       `db:"rating"`
	Comment *string   `db:"comment"`
}
