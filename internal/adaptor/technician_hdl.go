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

type TechnicianHandler struct {
	service usecase.TechnicianService
	log     *zap.Logger
}

func NewTechnicianHandler(service usecase.TechnicianService, log *zap.Logger) *TechnicianHandler {
	return &TechnicianHandler{
		service: service,
		log:     log.With(zap.String("handler", "technician")),
	}
}

// RegisterTechnician handles POST /api/technician/register
func (h *TechnicianHandler) RegisterTechnician(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.TechnicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	technician, err := h.service.RegisterTechnician(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "register technician")
		return
	}

	utils.ResponseCreated(w, "Technician registered successfully, waiting for approval", technician)
}

// GetTechnicians handles GET /api/technicians
func (h *TechnicianHandler) GetTechnicians(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	filter := repository.TechnicianFilter{
		Search:    query.Get("search"),
		Specialty: query.Get("specialty"),
	}
	if approval := query.Get("approval_status"); approval != "" {
		filter.Approval = &approval
	}

	technicians, err := h.service.GetTechnicians(r.Context(), req, filter)
	if err != nil {
		handleServiceError(h.log, w, err, "get technicians")
		return
	}

	utils.ResponseSuccess(w, "Technicians retrieved successfully", technicians)
}

// GetTechnicianByID handles GET /api/technicians/{id}
func (h *TechnicianHandler) GetTechnicianByID(w http.ResponseWriter, r *http.Request) {
	technicianID := chi.URLParam(r, "id")
	if technicianID == "" {
		utils.ResponseBadRequest(w, "Technician ID is required", nil)
		return
	}

	technician, err := h.service.GetTechnicianByID(r.Context(), technicianID)
	if err != nil {
		handleServiceError(h.log, w, err, "get technician by ID")
		return
	}

	utils.ResponseSuccess(w, "Technician retrieved successfully", technician)
}

// UpdateApproval handles PATCH /api/admin/technicians/{id}/approval
func (h *TechnicianHandler) UpdateApproval(w http.ResponseWriter, r *http.Request) {
	technicianID := chi.URLParam(r, "id")
	if technicianID == "" {
		utils.ResponseBadRequest(w, "Technician ID is required", nil)
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

	technician, err := h.service.UpdateApproval(r.Context(), technicianID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update technician approval")
		return
	}

	utils.ResponseSuccess(w, "Technician approval updated successfully", technician)
}
