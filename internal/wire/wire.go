// internal/wire/wire.go
package wire

import (
	"net/http"

	"servisku/internal/adaptor"
	"servisku/internal/data/repository"
	"servisku/internal/usecase"
	"servisku/pkg/middleware"
	"servisku/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	cache *redis.Client,
	publisher usecase.EventPublisher,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, cache, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wireUser(r, handler.User, repo, logger)
	wireProduct(r, handler.Product, repo, logger)
	wireRepair(r, handler.Repair, repo, logger)
	wireRental(r, handler.Rental, repo, logger)
	wireOrder(r, handler.Order, repo, logger)
	wireMitra(r, handler.Mitra, repo, logger)
	wireTechnician(r, handler.Technician, repo, logger)
	wireReview(r, handler.Review, repo, logger)
	wireChat(r, handler.Chat, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
