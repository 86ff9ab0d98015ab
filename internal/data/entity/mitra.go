package entity

import (
	"github.com/google/uuid"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Mitra adalah badan usaha partner, beda dari teknisi perorangan
type Mitra struct {
	Base
	UserID       uuid.UUID      `db:"user_id"`
	BusinessName string         `db:"business_name"`
	Description  *string        `db:"description"`
	Address      string         `db:"address"`
	Latitude     *float64       `db:"latitude"`
	Longitude    *float64       `db:"longitude"`
	Approval     ApprovalStatus `db:"approval_status"`
	AvgRating    float64        `db:"avg_rating"`
	ReviewCount  int            `db:"review_count"`
}
