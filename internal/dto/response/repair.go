package response

import (
	"time"

	"servisku/internal/data/entity"
)

type RepairServiceResponse struct {
	ID          string    `json:"id"`
	MitraID     string    `json:"mitra_id"`
	MitraName   string    `json:"mitra_name,omitempty"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	MinPrice    int64     `json:"min_price"`
	MaxPrice    int64     `json:"max_price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func RepairServiceToResponse(service *entity.RepairService, mitraName string) RepairServiceResponse {
	return RepairServiceResponse{
		ID:          service.ID.String(),
		MitraID:     service.MitraID.String(),
		MitraName:   mitraName,
		Name:        service.Name,
		Description: service.Description,
		Category:    service.Category,
		MinPrice:    service.MinPrice,
		MaxPrice:    service.MaxPrice,
		IsActive:    service.IsActive,
		CreatedAt:   service.CreatedAt,
	}
}
