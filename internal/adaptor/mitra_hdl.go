package adaptor

import (
	"encoding/json"
	"net/http"

	"servisku/internal/data/repository"
	"servisku/internal/dto/request"
	"servisku/internal/usecase"
	"servisku/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MitraHandler struct {
	service usecase.MitraService
	log     *zap.Logger
}

func NewMitraHandler(service usecase.MitraService, log *zap.Logger) *MitraHandler {
	return &MitraHandler{
		service: service,
		log:     log.With(zap.String("handler", "mitra")),
	}
}

// RegisterMitra handles POST /api/mitra/register
func (h *MitraHandler) RegisterMitra(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.MitraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	mitra, err := h.service.RegisterMitra(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "register mitra")
		return
	}

	utils.ResponseCreated(w, "Mitra registered successfully, waiting for approval", mitra)
}

// GetMitras handles GET /api/mitras
func (h *MitraHandler) GetMitras(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	filter := repository.MitraFilter{
		Search: query.Get("search"),
	}
	if approval := query.Get("approval_status"); approval != "" {
		filter.Approval = &approval
	}

	mitras, err := h.service.GetMitras(r.Context(), req, filter)
	if err != nil {
		handleServiceError(h.log, w, err, "get mitras")
		return
	}

	utils.ResponseSuccess(w, "Mitras retrieved successfully", mitras)
}

// GetMitraByID handles GET /api/mitras/{id}
func (h *MitraHandler) GetMitraByID(w http.ResponseWriter, r *http.Request) {
	mitraID := chi.URLParam(r, "id")
	if mitraID == "" {
		utils.ResponseBadRequest(w, "Mitra ID is required", nil)
		return
	}

	mitra, err := h.service.GetMitraByID(r.Context(), mitraID)
	if err != nil {
		handleServiceError(h.log, w, err, "get mitra by ID")
		return
	}

	utils.ResponseSuccess(w, "Mitra retrieved successfully", mitra)
}

// GetOwnMitra handles GET /api/mitra/profile
func (h *MitraHandler) GetOwnMitra(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	mitra, err := h.service.GetOwnMitra(r.Context(), userID.String())
	if err != nil {
		handleServiceError(h.log, w, err, "get own mitra")
		return
	}

	utils.ResponseSuccess(w, "Mitra profile retrieved successfully", mitra)
}

// UpdateMitra handles PUT /api/mitra/profile
func (h *MitraHandler) UpdateMitra(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.MitraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	mitra, err := h.service.UpdateMitra(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update mitra")
		return
	}

	utils.ResponseSuccess(w, "Mitra profile updated successfully", mitra)
}

// UpdateApproval handles PATCH /api/admin/mitras/{id}/approval
func (h *MitraHandler) UpdateApproval(w http.ResponseWriter, r *http.Request) {
	mitraID := chi.URLParam(r, "id")
	if mitraID == "" {
		utils.ResponseBadRequest(w, "Mitra ID is required", nil)
		return
	}

	var req request.ApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	mitra, err := h.service.UpdateApproval(r.Context(), mitraID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update mitra approval")
		return
	}

	utils.ResponseSuccess(w, "Mitra approval updated successfully", mitra)
}
