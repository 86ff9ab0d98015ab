package repository

import (
	"servisku/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Product    ProductRepository
	Service    RepairServiceRepository
	RentalItem RentalItemRepository
	Mitra      MitraRepository
	Technician TechnicianRepository
	Order      OrderRepository
	OrderItem  OrderItemRepository
	Review     ReviewRepository
	Chat       ChatRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Product:    NewProductRepository(db, log),
		Service:    NewRepairServiceRepository(db, log),
		RentalItem: NewRentalItemRepository(db, log),
		Mitra:      NewMitraRepository(db, log),
		Technician: NewTechnicianRepository(db, log),
		Order:      NewOrderRepository(db, log),
		OrderItem:  NewOrderItemRepository(db, log),
		Review:     NewReviewRepository(db, log),
		Chat:       NewChatRepository(db, log),
	}
}
