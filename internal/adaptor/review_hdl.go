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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.CreateReview(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review created successfully", review)
}

// GetMitraReviews handles GET /api/mitras/{id}/reviews
func (h *ReviewHandler) GetMitraReviews(w http.ResponseWriter, r *http.Request) {
	mitraID := chi.URLParam(r, "id")
	if mitraID == "" {
		utils.ResponseBadRequest(w, "Mitra ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	reviews, err := h.service.GetMitraReviews(r.Context(), mitraID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get mitra reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}
