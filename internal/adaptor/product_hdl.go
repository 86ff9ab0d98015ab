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

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// GetProducts handles GET /api/products
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	filter := repository.ProductFilter{
		Search:      query.Get("search"),
		Category:    query.Get("category"),
		Brand:       query.Get("brand"),
		StockStatus: query.Get("stock_status"),
		ActiveOnly:  true,
	}
	if minPrice := utils.ParseInt64(query.Get("min_price")); minPrice > 0 {
		filter.MinPrice = &minPrice
	}
	if maxPrice := utils.ParseInt64(query.Get("max_price")); maxPrice > 0 {
		filter.MaxPrice = &maxPrice
	}

	products, err := h.service.GetProducts(r.Context(), req, filter)
	if err != nil {
		handleServiceError(h.log, w, err, "get products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// GetProductByID handles GET /api/products/{id}
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	product, err := h.service.GetProductByID(r.Context(), productID)
	if err != nil {
		handleServiceError(h.log, w, err, "get product by ID")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved successfully", product)
}

// GetStockAggregate handles GET /api/admin/products/stock
func (h *ProductHandler) GetStockAggregate(w http.ResponseWriter, r *http.Request) {
	aggregate, err := h.service.GetStockAggregate(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get product stock aggregate")
		return
	}

	utils.ResponseSuccess(w, "Stock aggregate retrieved successfully", aggregate)
}

// CreateProduct handles POST /api/admin/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created successfully", product)
}

// UpdateProduct handles PUT /api/admin/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), productID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /api/admin/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		handleServiceError(h.log, w, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted successfully", nil)
}
