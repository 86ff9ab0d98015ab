package request

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Confirm  string  `json:"confirm_password" validate:"required,eqfield=Password"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role,omitempty" validate:"omitempty,oneof=customer technician mitra"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
	Confirm     string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}
