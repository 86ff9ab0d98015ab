package response

import (
	"time"

	"servisku/internal/data/entity"
)

type MitraResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	BusinessName string    `json:"business_name"`
	Description  *string   `json:"description,omitempty"`
	Address      string    `json:"address"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Approval     string    `json:"approval_status"`
	AvgRating    float64   `json:"avg_rating"`
	ReviewCount  int       `json:"review_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func MitraToResponse(mitra *entity.Mitra) MitraResponse {
	return MitraResponse{
		ID:           mitra.ID.String(),
		UserID:       mitra.UserID.String(),
		BusinessName: mitra.BusinessName,
		Description:  mitra.Description,
		Address:      mitra.Address,
		Latitude:     mitra.Latitude,
		Longitude:    mitra.Longitude,
		Approval:     string(mitra.Approval),
		AvgRating:    mitra.AvgRating,
		ReviewCount:  mitra.ReviewCount,
		CreatedAt:    mitra.CreatedAt,
	}
}
