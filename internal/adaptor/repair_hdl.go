package adaptor

import (
	"encoding/json"
	"net/http"

	"servisku/internal/data/repository"
	"servisku/internal/dto/request"
	"servisku/internal/usecase"
	"servisku/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RepairHandler struct {
	service usecase.RepairService
	log     *zap.Logger
}

func NewRepairHandler(service usecase.RepairService, log *zap.Logger) *RepairHandler {
	return &RepairHandler{
		service: service,
		log:     log.With(zap.String("handler", "repair")),
	}
}

// GetServices handles GET /api/services
func (h *RepairHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	filter := repository.RepairServiceFilter{
		Search:     query.Get("search"),
		Category:   query.Get("category"),
		ActiveOnly: true,
	}
	if mitraID := query.Get("mitra_id"); mitraID != "" {
		id, err := uuid.Parse(mitraID)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid mitra_id filter", nil)
			return
		}
		filter.MitraID = &id
	}

	services, err := h.service.GetServices(r.Context(), req, filter)
	if err != nil {
		handleServiceError(h.log, w, err, "get repair services")
		return
	}

	utils.ResponseSuccess(w, "Repair services retrieved successfully", services)
}

// GetServiceByID handles GET /api/services/{id}
func (h *RepairHandler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	service, err := h.service.GetServiceByID(r.Context(), serviceID)
	if err != nil {
		handleServiceError(h.log, w, err, "get repair service by ID")
		return
	}

	utils.ResponseSuccess(w, "Repair service retrieved successfully", service)
}

// CreateService handles POST /api/mitra/services
func (h *RepairHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.RepairServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	service, err := h.service.CreateService(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create repair service")
		return
	}

	utils.ResponseCreated(w, "Repair service created successfully", service)
}

// UpdateService handles PUT /api/mitra/services/{id}
func (h *RepairHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	var req request.RepairServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	service, err := h.service.UpdateService(r.Context(), userID.String(), serviceID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update repair service")
		return
	}

	utils.ResponseSuccess(w, "Repair service updated successfully", service)
}

// DeleteService handles DELETE /api/mitra/services/{id}
func (h *RepairHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	if err := h.service.DeleteService(r.Context(), userID.String(), serviceID); err != nil {
		handleServiceError(h.log, w, err, "delete repair service")
		return
	}

	utils.ResponseSuccess(w, "Repair service deleted successfully", nil)
}
