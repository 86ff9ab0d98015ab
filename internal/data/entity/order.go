package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusInProgress     OrderStatus = "IN_PROGRESS"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// OrderKind menentukan siapa yang mengontrol status setelah PAID:
// order jasa dikontrol oleh teknisi, order sparepart/rental oleh admin
type OrderKind string

const (
	OrderKindService   OrderKind = "service"
	OrderKindSparepart OrderKind = "sparepart"
	OrderKindRental    OrderKind = "rental"
	OrderKindMixed     OrderKind = "mixed"
)

type Order struct {
	Base
	OrderNumber  string      `db:"order_number"`
	UserID       uuid.UUID   `db:"user_id"`
	TechnicianID *uuid.UUID  `db:"technician_id"`
	Kind         OrderKind   `db:"kind"`
	Total        int64       `db:"total"`
	Deposit      int64       `db:"deposit"`
	Status       OrderStatus `db:"status"`
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// GoodsDriven: order yang mengandung sparepart/rental digerakkan admin
func (k OrderKind) GoodsDriven() bool {
	return k != OrderKindService
}

// validNext adalah graf transisi monotonic; CANCELLED hanya dari state non-terminal
var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPendingPayment: {OrderStatusPaid: true, OrderStatusCancelled: true},
	OrderStatusPaid:           {OrderStatusInProgress: true, OrderStatusCancelled: true},
	OrderStatusInProgress:     {OrderStatusCompleted: true, OrderStatusCancelled: true},
	OrderStatusCompleted:      {},
	OrderStatusCancelled:      {},
}

// CanTransition cek graf saja, tanpa role
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// AuthorizeTransition adalah satu-satunya tabel transisi role-gated,
// dipakai semua endpoint yang mengubah status order.
//
//	Admin    : PENDING_PAYMENT→PAID; PAID→IN_PROGRESS dan IN_PROGRESS→COMPLETED
//	           hanya untuk order sparepart/rental; cancel dari state non-terminal
//	Teknisi  : PAID→IN_PROGRESS, IN_PROGRESS→COMPLETED, cancel order miliknya;
//	           tidak boleh set PAID atau balik ke PENDING_PAYMENT
//	Customer : read-only
func AuthorizeTransition(role UserRole, kind OrderKind, from, to OrderStatus) error {
	if from.IsTerminal() {
		return fmt.Errorf("cannot change status of %s order", from)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("cannot transition order from %s to %s", from, to)
	}

	switch role {
	case RoleAdmin:
		if to == OrderStatusCancelled || to == OrderStatusPaid {
			return nil
		}
		// PAID→IN_PROGRESS / IN_PROGRESS→COMPLETED: khusus order barang
		if !kind.GoodsDriven() {
			return fmt.Errorf("cannot update %s order status, controlled by technician", kind)
		}
		return nil

	case RoleTechnician:
		if to == OrderStatusPaid {
			return fmt.Errorf("cannot set order status to %s as technician", to)
		}
		return nil

	default:
		return fmt.Errorf("cannot update order status as %s", role)
	}
}
