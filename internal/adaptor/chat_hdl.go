package adaptor

import (
	"encoding/json"
	"net/http"

	"servisku/internal/dto/request"
	"servisku/internal/usecase"
	"servisku/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ChatHandler struct {
	service usecase.ChatService
	log     *zap.Logger
}

func NewChatHandler(service usecase.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With(zap.String("handler", "chat")),
	}
}

// SendMessage handles POST /api/chats
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	message, err := h.service.SendMessage(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "send message")
		return
	}

	utils.ResponseCreated(w, "Message sent successfully", message)
}

// PollMessages handles GET /api/chats/{peerId}?after_id=42.
// Client mengirim seq terakhir yang sudah diterima, server balas pesan setelahnya.
func (h *ChatHandler) PollMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	peerID := chi.URLParam(r, "peerId")
	if peerID == "" {
		utils.ResponseBadRequest(w, "Peer ID is required", nil)
		return
	}

	afterID := utils.ParseInt64(r.URL.Query().Get("after_id"))

	messages, err := h.service.PollMessages(r.Context(), userID.String(), peerID, afterID)
	if err != nil {
		handleServiceError(h.log, w, err, "poll messages")
		return
	}

	utils.ResponseSuccess(w, "Messages retrieved successfully", messages)
}
