package wire

import (
	"servisku/internal/adaptor"
	"servisku/internal/data/repository"
	"servisku/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRental(
	r chi.Router,
	rentalHandler *adaptor.RentalHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/rentals", rentalHandler.GetRentalItems)
	r.Get("/api/rentals/{id}", rentalHandler.GetRentalItemByID)
	r.Get("/api/rentals/{id}/quote", rentalHandler.GetQuote)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/rentals", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/stock", rentalHandler.GetStockAggregate)
		r.Post("/", rentalHandler.CreateRentalItem)
		r.Put("/{id}", rentalHandler.UpdateRentalItem)
		r.Delete("/{id}", rentalHandler.DeleteRentalItem)
	})
}
