package request

// CheckoutItemRequest merefer tepat satu dari product / service / rental item
type CheckoutItemRequest struct {
	ProductID    *string `json:"product_id,omitempty" validate:"omitempty,uuid"`
	ServiceID    *string `json:"service_id,omitempty" validate:"omitempty,uuid"`
	RentalItemID *string `json:"rental_item_id,omitempty" validate:"omitempty,uuid"`
	Quantity     int     `json:"quantity" validate:"omitempty,min=1"`
	DurationType string  `json:"duration_type,omitempty" validate:"omitempty,oneof=daily weekly monthly custom"`
	Duration     int     `json:"duration,omitempty" validate:"omitempty,min=1,max=365"`
}

type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING_PAYMENT PAID IN_PROGRESS COMPLETED CANCELLED"`
}

type AssignTechnicianRequest struct {
	TechnicianID string `json:"technician_id" validate:"required,uuid"`
}
