package response

import (
	"time"

	"servisku/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	MitraID   string    `json:"mitra_id"`
	UserID    string    `json:"user_id"`
	OrderID   string    `json:"order_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		MitraID:   review.MitraID.String(),
		UserID:    review.UserID.String(),
		OrderID:   review.OrderID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
