package response

import (
	"time"

	"servisku/internal/data/entity"
)

type OrderItemResponse struct {
	ID           string  `json:"id"`
	ProductID    *string `json:"product_id,omitempty"`
	ServiceID    *string `json:"service_id,omitempty"`
	RentalItemID *string `json:"rental_item_id,omitempty"`
	Quantity     int     `json:"quantity"`
	RentalDays   int     `json:"rental_days,omitempty"`
	UnitPrice    int64   `json:"unit_price"`
	Subtotal     int64   `json:"subtotal"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	OrderNumber  string              `json:"order_number"`
	UserID       string              `json:"user_id"`
	TechnicianID *string             `json:"technician_id,omitempty"`
	Kind         string              `json:"kind"`
	Total        int64               `json:"total"`
	Deposit      int64               `json:"deposit"`
	Status       string              `json:"status"`
	Items        []OrderItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

func OrderItemToResponse(item *entity.OrderItem) OrderItemResponse {
	resp := OrderItemResponse{
		ID:         item.ID.String(),
		Quantity:   item.Quantity,
		RentalDays: item.RentalDays,
		UnitPrice:  item.UnitPrice,
		Subtotal:   item.Subtotal,
	}
	if item.ProductID != nil {
		s := item.ProductID.String()
		resp.ProductID = &s
	}
	if item.ServiceID != nil {
		s := item.ServiceID.String()
		resp.ServiceID = &s
	}
	if item.RentalItemID != nil {
		s := item.RentalItemID.String()
		resp.RentalItemID = &s
	}
	return resp
}

func OrderToResponse(order *entity.Order, items []*entity.OrderItem) OrderResponse {
	itemResponses := make([]OrderItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = OrderItemToResponse(item)
	}

	resp := OrderResponse{
		ID:          order.ID.String(),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID.String(),
		Kind:        string(order.Kind),
		Total:       order.Total,
		Deposit:     order.Deposit,
		Status:      string(order.Status),
		Items:       itemResponses,
		CreatedAt:   order.CreatedAt,
	}
	if order.TechnicianID != nil {
		s := order.TechnicianID.String()
		resp.TechnicianID = &s
	}
	return resp
}
