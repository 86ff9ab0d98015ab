package request

type RepairServiceRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category" validate:"required"`
	MinPrice    int64   `json:"min_price" validate:"required,gt=0"`
	MaxPrice    int64   `json:"max_price" validate:"required,gtefield=MinPrice"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
