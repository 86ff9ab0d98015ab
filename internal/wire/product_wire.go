package wire

import (
	"servisku/internal/adaptor"
	"servisku/internal/data/repository"
	"servisku/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Katalog sparepart bisa di-browse tanpa login
	r.Get("/api/products", productHandler.GetProducts)
	r.Get("/api/products/{id}", productHandler.GetProductByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/products", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/stock", productHandler.GetStockAggregate)
		r.Post("/", productHandler.CreateProduct)
		r.Put("/{id}", productHandler.UpdateProduct)
		r.Delete("/{id}", productHandler.DeleteProduct)
	})
}
