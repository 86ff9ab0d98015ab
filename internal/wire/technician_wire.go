package wire

import (
	"servisku/internal/adaptor"
	"servisku/internal/data/repository"
	"servisku/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTechnician(
	r chi.Router,
	technicianHandler *adaptor.TechnicianHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/technicians", technicianHandler.GetTechnicians)
	r.Get("/api/technicians/{id}", technicianHandler.GetTechnicianByID)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Post("/api/technician/register", technicianHandler.RegisterTechnician)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/technicians", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Patch("/{id}/approval", technicianHandler.UpdateApproval)
	})
}
