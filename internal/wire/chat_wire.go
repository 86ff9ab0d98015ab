package wire

import (
	"servisku/internal/adaptor"
	"servisku/internal/data/repository"
	"servisku/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireChat(
	r chi.Router,
	chatHandler *adaptor.ChatHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/chats", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/", chatHandler.SendMessage)
		r.Get("/{peerId}", chatHandler.PollMessages)
	})
}
