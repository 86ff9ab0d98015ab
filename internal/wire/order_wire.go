package wire

import (
	"servisku/internal/adaptor"
	"servisku/internal/data/repository"
	"servisku/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/", orderHandler.Checkout)
		r.Get("/", orderHandler.GetUserOrders)
		r.Get("/{id}", orderHandler.GetOrderByID)

		// Role-gate transisi status ada di service, route cukup auth
		r.Patch("/{id}/status", orderHandler.UpdateStatus)
	})

	// ==================== TECHNICIAN ROUTES ====================
	r.Route("/api/technician/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Technician(log))

		r.Get("/", orderHandler.ListAssignedOrders)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", orderHandler.ListOrders)
		r.Patch("/{id}/technician", orderHandler.AssignTechnician)
	})
}
