package usecase

import (
	"context"
	"fmt"
	"time"

	"servisku/internal/data/entity"
	"servisku/internal/data/repository"
	"servisku/internal/dto/request"
	"servisku/internal/dto/response"
	"servisku/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	GetProducts(ctx context.Context, req *request.PaginatedRequest, filter repository.ProductFilter) (*response.PaginatedResponse[response.ProductResponse], error)
	GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error)
	GetStockAggregate(ctx context.Context) (*response.StockAggregateResponse, error)
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID string, req *request.ProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type productService struct {
	repo              *repository.Repository
	lowStockThreshold int
	log               *zap.Logger
}

func NewProductService(repo *repository.Repository, lowStockThreshold int, log *zap.Logger) ProductService {
	return &productService{
		repo:              repo,
		lowStockThreshold: lowStockThreshold,
		log:               log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetProducts(ctx context.Context, req *request.PaginatedRequest, filter repository.ProductFilter) (*response.PaginatedResponse[response.ProductResponse], error) {
	filter.LowStockThreshold = s.lowStockThreshold

	limit := req.Limit()
	offset := req.Offset()

	products, err := s.repo.Product.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to get products",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get products: %w", err)
	}

	total, err := s.repo.Product.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, fmt.Errorf("count products: %w", err)
	}

	productResponses := make([]response.ProductResponse, len(products))
	for i, product := range products {
		productResponses[i] = response.ProductToResponse(product, s.lowStockThreshold)
	}

	s.log.Info("Products retrieved",
		zap.Int("count", len(products)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
	)

	return response.NewPaginatedResponse(productResponses, req.Page, req.PerPage, total), nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID format %s: %w", productID, err)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil || product == nil {
		return nil, fmt.Errorf("product %s not found", productID)
	}

	resp := response.ProductToResponse(product, s.lowStockThreshold)
	return &resp, nil
}

func (s *productService) GetStockAggregate(ctx context.Context) (*response.StockAggregateResponse, error) {
	agg, err := s.repo.Product.AggregateStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("get product stock aggregate: %w", err)
	}

	return &response.StockAggregateResponse{
		Total:       agg.Total,
		Available:   agg.Available,
		Unavailable: agg.Unavailable,
	}, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		IsActive:    isActive,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)

	resp := response.ProductToResponse(product, s.lowStockThreshold)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID format %s: %w", productID, err)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil || product == nil {
		return nil, fmt.Errorf("product %s not found", productID)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Brand = req.Brand
	product.Category = req.Category
	product.Price = req.Price
	product.Stock = req.Stock
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.Info("Product updated", zap.String("product_id", productID))

	resp := response.ProductToResponse(product, s.lowStockThreshold)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return fmt.Errorf("invalid product ID format %s: %w", productID, err)
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	return nil
}
