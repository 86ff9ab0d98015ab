package wire

import (
	"servisku/internal/adaptor"
	"servisku/internal/data/repository"
	"servisku/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/profile", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", userHandler.GetProfile)
		r.Put("/", userHandler.UpdateProfile)
		r.Put("/password", userHandler.ChangePassword)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", userHandler.ListUsers)
		r.Patch("/{id}/role", userHandler.UpdateUserRole)
		r.Delete("/{id}", userHandler.DeactivateUser)
	})
}
