package request

type ReviewRequest struct {
	OrderID string  `json:"order_id" validate:"required,uuid"`
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}
