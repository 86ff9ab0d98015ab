package request

type TechnicianRequest struct {
	Specialty string  `json:"specialty" validate:"required,min=2,max=100"`
	MitraID   *string `json:"mitra_id,omitempty" validate:"omitempty,uuid"`
}
