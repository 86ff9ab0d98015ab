package response

import (
	"time"

	"servisku/internal/data/entity"
)

type TechnicianResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MitraID   *string   `json:"mitra_id,omitempty"`
	Username  string    `json:"username,omitempty"`
	Specialty string    `json:"specialty"`
	Approval  string    `json:"approval_status"`
	CreatedAt time.Time `json:"created_at"`
}

func TechnicianToResponse(technician *entity.Technician, username string) TechnicianResponse {
	resp := TechnicianResponse{
		ID:        technician.ID.String(),
		UserID:    technician.UserID.String(),
		Username:  username,
		Specialty: technician.Specialty,
		Approval:  string(technician.Approval),
		CreatedAt: technician.CreatedAt,
	}
	if technician.MitraID != nil {
		s := technician.MitraID.String()
		resp.MitraID = &s
	}
	return resp
}
