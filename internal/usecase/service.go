package usecase

import (
	"servisku/internal/data/repository"
	"servisku/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Product    ProductService
	Repair     RepairService
	Rental     RentalService
	Order      OrderService
	Mitra      MitraService
	Technician TechnicianService
	Review     ReviewService
	Chat       ChatService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	cache *redis.Client,
	publisher EventPublisher,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(repo, config, log),
		User:       NewUserService(repo, log),
		Product:    NewProductService(repo, config.Catalog.LowStockThreshold, log),
		Repair:     NewRepairService(repo, log),
		Rental:     NewRentalService(repo, config.Catalog.LowStockThreshold, log),
		Order:      NewOrderService(repo, publisher, config.App.Name, log),
		Mitra:      NewMitraService(repo, log),
		Technician: NewTechnicianService(repo, log),
		Review:     NewReviewService(repo, log),
		Chat:       NewChatService(repo, cache, log),
	}
}
