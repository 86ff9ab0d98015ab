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

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Checkout handles POST /api/orders
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.Checkout(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "checkout")
		return
	}

	utils.ResponseCreated(w, "Order created successfully", order)
}

// GetUserOrders handles GET /api/orders
func (h *OrderHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	orders, err := h.service.GetUserOrders(r.Context(), userID.String(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get user orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// GetOrderByID handles GET /api/orders/{id}
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	order, err := h.service.GetOrderByID(r.Context(), userID.String(), role, orderID)
	if err != nil {
		handleServiceError(h.log, w, err, "get order by ID")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved successfully", order)
}

// UpdateStatus handles PATCH /api/orders/{id}/status.
// Role-gate transisi dilakukan di service, bukan di route.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), userID.String(), role, orderID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated successfully", order)
}

// ListOrders handles GET /api/admin/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	var status, kind *string
	if s := query.Get("status"); s != "" {
		status = &s
	}
	if k := query.Get("kind"); k != "" {
		kind = &k
	}

	orders, err := h.service.ListOrders(r.Context(), req, status, kind)
	if err != nil {
		handleServiceError(h.log, w, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// AssignTechnician handles PATCH /api/admin/orders/{id}/technician
func (h *OrderHandler) AssignTechnician(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	var req request.AssignTechnicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.AssignTechnician(r.Context(), orderID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "assign technician")
		return
	}

	utils.ResponseSuccess(w, "Technician assigned successfully", order)
}

// ListAssignedOrders handles GET /api/technician/orders
func (h *OrderHandler) ListAssignedOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	orders, err := h.service.ListAssignedOrders(r.Context(), userID.String(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list assigned orders")
		return
	}

	utils.ResponseSuccess(w, "Assigned orders retrieved successfully", orders)
}
