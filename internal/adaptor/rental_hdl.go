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

type RentalHandler struct {
	service usecase.RentalService
	log     *zap.Logger
}

func NewRentalHandler(service usecase.RentalService, log *zap.Logger) *RentalHandler {
	return &RentalHandler{
		service: service,
		log:     log.With(zap.String("handler", "rental")),
	}
}

// GetRentalItems handles GET /api/rentals
func (h *RentalHandler) GetRentalItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	filter := repository.RentalItemFilter{
		Search:      query.Get("search"),
		Category:    query.Get("category"),
		StockStatus: query.Get("stock_status"),
		ActiveOnly:  true,
	}

	items, err := h.service.GetRentalItems(r.Context(), req, filter)
	if err != nil {
		handleServiceError(h.log, w, err, "get rental items")
		return
	}

	utils.ResponseSuccess(w, "Rental items retrieved successfully", items)
}

// GetRentalItemByID handles GET /api/rentals/{id}
func (h *RentalHandler) GetRentalItemByID(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Rental item ID is required", nil)
		return
	}

	item, err := h.service.GetRentalItemByID(r.Context(), itemID)
	if err != nil {
		handleServiceError(h.log, w, err, "get rental item by ID")
		return
	}

	utils.ResponseSuccess(w, "Rental item retrieved successfully", item)
}

// GetQuote handles GET /api/rentals/{id}/quote?duration_type=weekly&duration=7
func (h *RentalHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Rental item ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := &request.RentalQuoteRequest{
		DurationType: query.Get("duration_type"),
		Duration:     utils.ParseInt(query.Get("duration"), 0),
	}

	quote, err := h.service.GetQuote(r.Context(), itemID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get rental quote")
		return
	}

	utils.ResponseSuccess(w, "Rental quote calculated successfully", quote)
}

// GetStockAggregate handles GET /api/admin/rentals/stock
func (h *RentalHandler) GetStockAggregate(w http.ResponseWriter, r *http.Request) {
	aggregate, err := h.service.GetStockAggregate(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get rental stock aggregate")
		return
	}

	utils.ResponseSuccess(w, "Stock aggregate retrieved successfully", aggregate)
}

// CreateRentalItem handles POST /api/admin/rentals
func (h *RentalHandler) CreateRentalItem(w http.ResponseWriter, r *http.Request) {
	var req request.RentalItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	item, err := h.service.CreateRentalItem(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create rental item")
		return
	}

	utils.ResponseCreated(w, "Rental item created successfully", item)
}

// UpdateRentalItem handles PUT /api/admin/rentals/{id}
func (h *RentalHandler) UpdateRentalItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Rental item ID is required", nil)
		return
	}

	var req request.RentalItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	item, err := h.service.UpdateRentalItem(r.Context(), itemID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update rental item")
		return
	}

	utils.ResponseSuccess(w, "Rental item updated successfully", item)
}

// DeleteRentalItem handles DELETE /api/admin/rentals/{id}
func (h *RentalHandler) DeleteRentalItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Rental item ID is required", nil)
		return
	}

	if err := h.service.DeleteRentalItem(r.Context(), itemID); err != nil {
		handleServiceError(h.log, w, err, "delete rental item")
		return
	}

	utils.ResponseSuccess(w, "Rental item deleted successfully", nil)
}
