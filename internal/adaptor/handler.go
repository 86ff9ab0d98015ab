package adaptor

import (
	"servisku/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Product    *ProductHandler
	Repair     *RepairHandler
	Rental     *RentalHandler
	Order      *OrderHandler
	Mitra      *MitraHandler
	Technician *TechnicianHandler
	Review     *ReviewHandler
	Chat       *ChatHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		User:       NewUserHandler(service.User, log),
		Product:    NewProductHandler(service.Product, log),
		Repair:     NewRepairHandler(service.Repair, log),
		Rental:     NewRentalHandler(service.Rental, log),
		Order:      NewOrderHandler(service.Order, log),
		Mitra:      NewMitraHandler(service.Mitra, log),
		Technician: NewTechnicianHandler(service.Technician, log),
		Review:     NewReviewHandler(service.Review, log),
		Chat:       NewChatHandler(service.Chat, log),
	}
}
