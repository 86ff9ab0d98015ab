package entity

import (
	"github.com/google/uuid"
)

type Technician struct {
	Base
	UserID    uuid.UUID      `db:"user_id"`
	MitraID   *uuid.UUID     `db:"mitra_id"`
	Specialty string         `db:"specialty"`
	Approval  ApprovalStatus `db:"approval_status"`
}
