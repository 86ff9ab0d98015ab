package wire

import (
	"servisku/internal/adaptor"
	"servisku/internal/data/entity"
	"servisku/internal/data/repository"
	"servisku/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRepair(
	r chi.Router,
	repairHandler *adaptor.RepairHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/services", repairHandler.GetServices)
	r.Get("/api/services/{id}", repairHandler.GetServiceByID)

	// ==================== MITRA ROUTES ====================
	// Kelola jasa hanya untuk mitra yang approved (dicek di service)
	r.Route("/api/mitra/services", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(entity.RoleMitra, log))

		r.Post("/", repairHandler.CreateService)
		r.Put("/{id}", repairHandler.UpdateService)
		r.Delete("/{id}", repairHandler.DeleteService)
	})
}
