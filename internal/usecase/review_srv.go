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

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, req *request.ReviewRequest) (*response.ReviewResponse, error)
	GetMitraReviews(ctx context.Context, mitraID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// CreateReview: satu review per order, hanya untuk order jasa yang COMPLETED.
// Mitra yang direview diambil dari line jasa pada order tersebut.
func (s *reviewService) CreateReview(ctx context.Context, userID string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format %s: %w", req.OrderID, err)
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil || order == nil {
		return nil, fmt.Errorf("order %s not found", req.OrderID)
	}
	if order.UserID != uid {
		return nil, fmt.Errorf("unauthorized: order %s belongs to another user", req.OrderID)
	}
	if order.Status != entity.OrderStatusCompleted {
		return nil, fmt.Errorf("cannot review order %s, order is not completed", req.OrderID)
	}

	exists, err := s.repo.Review.ExistsForOrder(ctx, orderID, uid)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("order %s is already reviewed", req.OrderID)
	}

	mitraID, err := s.mitraForOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		MitraID: mitraID,
		UserID:  uid,
		OrderID: orderID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	// Agregat rating mitra di-refresh dari tabel review, bukan incremental
	avg, count, err := s.repo.Review.GetMitraReviewStats(ctx, mitraID)
	if err != nil {
		s.log.Error("Failed to refresh mitra rating",
			zap.Error(err),
			zap.String("mitra_id", mitraID.String()),
		)
	} else if err := s.repo.Mitra.UpdateRating(ctx, mitraID, avg, int(count)); err != nil {
		s.log.Error("Failed to update mitra rating",
			zap.Error(err),
			zap.String("mitra_id", mitraID.String()),
		)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("order_id", req.OrderID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetMitraReviews(ctx context.Context, mitraID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	id, err := uuid.Parse(mitraID)
	if err != nil {
		return nil, fmt.Errorf("invalid mitra ID format %s: %w", mitraID, err)
	}

	mitra, err := s.repo.Mitra.FindByID(ctx, id)
	if err != nil || mitra == nil {
		return nil, fmt.Errorf("mitra %s not found", mitraID)
	}

	reviews, err := s.repo.Review.FindByMitraID(ctx, id, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get mitra reviews", zap.Error(err))
		return nil, fmt.Errorf("get mitra reviews: %w", err)
	}

	total, err := s.repo.Review.CountByMitraID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count mitra reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.PerPage, total), nil
}

// mitraForOrder mencari mitra dari line jasa pertama pada order
func (s *reviewService) mitraForOrder(ctx context.Context, orderID uuid.UUID) (uuid.UUID, error) {
	items, err := s.repo.OrderItem.FindByOrderID(ctx, orderID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get order items: %w", err)
	}

	for _, item := range items {
		if item.ServiceID == nil {
			continue
		}
		svc, err := s.repo.Service.FindByID(ctx, *item.ServiceID)
		if err != nil || svc == nil {
			continue
		}
		return svc.MitraID, nil
	}

	return uuid.Nil, fmt.Errorf("cannot review order %s, order has no repair service", orderID.String())
}
