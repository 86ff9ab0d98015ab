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

type RentalService interface {
	GetRentalItems(ctx context.Context, req *request.PaginatedRequest, filter repository.RentalItemFilter) (*response.PaginatedResponse[response.RentalItemResponse], error)
	GetRentalItemByID(ctx context.Context, itemID string) (*response.RentalItemResponse, error)
	GetQuote(ctx context.Context, itemID string, req *request.RentalQuoteRequest) (*response.RentalQuoteResponse, error)
	GetStockAggregate(ctx context.Context) (*response.StockAggregateResponse, error)
	CreateRentalItem(ctx context.Context, req *request.RentalItemRequest) (*response.RentalItemResponse, error)
	UpdateRentalItem(ctx context.Context, itemID string, req *request.RentalItemRequest) (*response.RentalItemResponse, error)
	DeleteRentalItem(ctx context.Context, itemID string) error
}

type rentalService struct {
	repo              *repository.Repository
	lowStockThreshold int
	log               *zap.Logger
}

func NewRentalService(repo *repository.Repository, lowStockThreshold int, log *zap.Logger) RentalService {
	return &rentalService{
		repo:              repo,
		lowStockThreshold: lowStockThreshold,
		log:               log.With(zap.String("service", "rental")),
	}
}

func (s *rentalService) GetRentalItems(ctx context.Context, req *request.PaginatedRequest, filter repository.RentalItemFilter) (*response.PaginatedResponse[response.RentalItemResponse], error) {
	filter.LowStockThreshold = s.lowStockThreshold

	items, err := s.repo.RentalItem.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get rental items", zap.Error(err))
		return nil, fmt.Errorf("get rental items: %w", err)
	}

	total, err := s.repo.RentalItem.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count rental items", zap.Error(err))
		return nil, fmt.Errorf("count rental items: %w", err)
	}

	itemResponses := make([]response.RentalItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = response.RentalItemToResponse(item, s.lowStockThreshold)
	}

	return response.NewPaginatedResponse(itemResponses, req.Page, req.PerPage, total), nil
}

func (s *rentalService) GetRentalItemByID(ctx context.Context, itemID string) (*response.RentalItemResponse, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("invalid rental item ID format %s: %w", itemID, err)
	}

	item, err := s.repo.RentalItem.FindByID(ctx, id)
	if err != nil || item == nil {
		return nil, fmt.Errorf("rental item %s not found", itemID)
	}

	resp := response.RentalItemToResponse(item, s.lowStockThreshold)
	return &resp, nil
}

// GetQuote menghitung rincian harga sewa untuk satu item tanpa membuat order
func (s *rentalService) GetQuote(ctx context.Context, itemID string, req *request.RentalQuoteRequest) (*response.RentalQuoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Rental quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !ValidDurationType(req.DurationType) {
		return nil, fmt.Errorf("invalid duration type %s", req.DurationType)
	}
	if DurationType(req.DurationType) == DurationCustom && (req.Duration < minCustomDays || req.Duration > maxCustomDays) {
		return nil, fmt.Errorf("invalid custom duration %d, must be between %d and %d days", req.Duration, minCustomDays, maxCustomDays)
	}

	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("invalid rental item ID format %s: %w", itemID, err)
	}

	item, err := s.repo.RentalItem.FindByID(ctx, id)
	if err != nil || item == nil {
		return nil, fmt.Errorf("rental item %s not found", itemID)
	}

	quote := CalculateRentalQuote(item.PricePerDay, DurationType(req.DurationType), req.Duration)

	s.log.Info("Rental quote calculated",
		zap.String("item_id", itemID),
		zap.String("duration_type", req.DurationType),
		zap.Int("actual_days", quote.ActualDays),
		zap.Int64("total", quote.Total),
	)

	return &quote, nil
}

func (s *rentalService) GetStockAggregate(ctx context.Context) (*response.StockAggregateResponse, error) {
	agg, err := s.repo.RentalItem.AggregateStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("get rental stock aggregate: %w", err)
	}

	return &response.StockAggregateResponse{
		Total:       agg.Total,
		Available:   agg.Available,
		Unavailable: agg.Unavailable,
	}, nil
}

func (s *rentalService) CreateRentalItem(ctx context.Context, req *request.RentalItemRequest) (*response.RentalItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create rental item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	item := &entity.RentalItem{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PricePerDay: req.PricePerDay,
		Stock:       req.Stock,
		IsActive:    isActive,
	}

	if err := s.repo.RentalItem.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create rental item: %w", err)
	}

	s.log.Info("Rental item created",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name),
	)

	resp := response.RentalItemToResponse(item, s.lowStockThreshold)
	return &resp, nil
}

func (s *rentalService) UpdateRentalItem(ctx context.Context, itemID string, req *request.RentalItemRequest) (*response.RentalItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("invalid rental item ID format %s: %w", itemID, err)
	}

	item, err := s.repo.RentalItem.FindByID(ctx, id)
	if err != nil || item == nil {
		return nil, fmt.Errorf("rental item %s not found", itemID)
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Category = req.Category
	item.PricePerDay = req.PricePerDay
	item.Stock = req.Stock
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.UpdatedAt = time.Now()

	if err := s.repo.RentalItem.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update rental item: %w", err)
	}

	resp := response.RentalItemToResponse(item, s.lowStockThreshold)
	return &resp, nil
}

func (s *rentalService) DeleteRentalItem(ctx context.Context, itemID string) error {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return fmt.Errorf("invalid rental item ID format %s: %w", itemID, err)
	}

	if err := s.repo.RentalItem.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete rental item: %w", err)
	}

	return nil
}
