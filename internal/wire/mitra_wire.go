package wire

import (
	"servisku/internal/adaptor"
	"servisku/internal/data/entity"
	"servisku/internal/data/repository"
	"servisku/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMitra(
	r chi.Router,
	mitraHandler *adaptor.MitraHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/mitras", mitraHandler.GetMitras)
	r.Get("/api/mitras/{id}", mitraHandler.GetMitraByID)

	// ==================== MITRA ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Post("/api/mitra/register", mitraHandler.RegisterMitra)

	r.Route("/api/mitra/profile", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(entity.RoleMitra, log))

		r.Get("/", mitraHandler.GetOwnMitra)
		r.Put("/", mitraHandler.UpdateMitra)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/mitras", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Patch("/{id}/approval", mitraHandler.UpdateApproval)
	})
}
