package request

type MitraRequest struct {
	BusinessName string   `json:"business_name" validate:"required,min=2,max=150"`
	Description  *string  `json:"description,omitempty"`
	Address      string   `json:"address" validate:"required"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

type ApprovalRequest struct {
	Approval string `json:"approval_status" validate:"required,oneof=approved rejected"`
}
