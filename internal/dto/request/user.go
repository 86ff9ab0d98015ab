package request

type UpdateProfileRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Phone    *string `json:"phone,omitempty"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer technician mitra admin"`
}
