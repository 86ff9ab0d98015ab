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

type MitraService interface {
	RegisterMitra(ctx context.Context, userID string, req *request.MitraRequest) (*response.MitraResponse, error)
	GetMitras(ctx context.Context, req *request.PaginatedRequest, filter repository.MitraFilter) (*response.PaginatedResponse[response.MitraResponse], error)
	GetMitraByID(ctx context.Context, mitraID string) (*response.MitraResponse, error)
	GetOwnMitra(ctx context.Context, userID string) (*response.MitraResponse, error)
	UpdateMitra(ctx context.Context, userID string, req *request.MitraRequest) (*response.MitraResponse, error)
	UpdateApproval(ctx context.Context, mitraID string, req *request.ApprovalRequest) (*response.MitraResponse, error)
}

type mitraService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMitraService(repo *repository.Repository, log *zap.Logger) MitraService {
	return &mitraService{
		repo: repo,
		log:  log.With(zap.String("service", "mitra")),
	}
}

// RegisterMitra membuat profil mitra dengan status pending, menunggu approval admin
func (s *mitraService) RegisterMitra(ctx context.Context, userID string, req *request.MitraRequest) (*response.MitraResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register mitra validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	existing, err := s.repo.Mitra.FindByUserID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("check existing mitra: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("mitra profile already exists for user %s", userID)
	}

	now := time.Now()
	mitra := &entity.Mitra{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:       uid,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Approval:     entity.ApprovalPending,
	}

	if err := s.repo.Mitra.Create(ctx, mitra); err != nil {
		return nil, fmt.Errorf("create mitra: %w", err)
	}

	s.log.Info("Mitra registered",
		zap.String("mitra_id", mitra.ID.String()),
		zap.String("user_id", userID),
		zap.String("business_name", mitra.BusinessName),
	)

	resp := response.MitraToResponse(mitra)
	return &resp, nil
}

func (s *mitraService) GetMitras(ctx context.Context, req *request.PaginatedRequest, filter repository.MitraFilter) (*response.PaginatedResponse[response.MitraResponse], error) {
	mitras, err := s.repo.Mitra.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get mitras", zap.Error(err))
		return nil, fmt.Errorf("get mitras: %w", err)
	}

	total, err := s.repo.Mitra.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count mitras: %w", err)
	}

	mitraResponses := make([]response.MitraResponse, len(mitras))
	for i, mitra := range mitras {
		mitraResponses[i] = response.MitraToResponse(mitra)
	}

	return response.NewPaginatedResponse(mitraResponses, req.Page, req.PerPage, total), nil
}

func (s *mitraService) GetMitraByID(ctx context.Context, mitraID string) (*response.MitraResponse, error) {
	id, err := uuid.Parse(mitraID)
	if err != nil {
		return nil, fmt.Errorf("invalid mitra ID format %s: %w", mitraID, err)
	}

	mitra, err := s.repo.Mitra.FindByID(ctx, id)
	if err != nil || mitra == nil {
		return nil, fmt.Errorf("mitra %s not found", mitraID)
	}

	resp := response.MitraToResponse(mitra)
	return &resp, nil
}

func (s *mitraService) GetOwnMitra(ctx context.Context, userID string) (*response.MitraResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	mitra, err := s.repo.Mitra.FindByUserID(ctx, uid)
	if err != nil || mitra == nil {
		return nil, fmt.Errorf("mitra profile not found for user %s", userID)
	}

	resp := response.MitraToResponse(mitra)
	return &resp, nil
}

func (s *mitraService) UpdateMitra(ctx context.Context, userID string, req *request.MitraRequest) (*response.MitraResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	mitra, err := s.repo.Mitra.FindByUserID(ctx, uid)
	if err != nil || mitra == nil {
		return nil, fmt.Errorf("mitra profile not found for user %s", userID)
	}

	mitra.BusinessName = req.BusinessName
	mitra.Description = req.Description
	mitra.Address = req.Address
	mitra.Latitude = req.Latitude
	mitra.Longitude = req.Longitude
	mitra.UpdatedAt = time.Now()

	if err := s.repo.Mitra.Update(ctx, mitra); err != nil {
		return nil, fmt.Errorf("update mitra: %w", err)
	}

	s.log.Info("Mitra updated", zap.String("mitra_id", mitra.ID.String()))

	resp := response.MitraToResponse(mitra)
	return &resp, nil
}

// UpdateApproval hanya dipanggil dari route admin
func (s *mitraService) UpdateApproval(ctx context.Context, mitraID string, req *request.ApprovalRequest) (*response.MitraResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(mitraID)
	if err != nil {
		return nil, fmt.Errorf("invalid mitra ID format %s: %w", mitraID, err)
	}

	mitra, err := s.repo.Mitra.FindByID(ctx, id)
	if err != nil || mitra == nil {
		return nil, fmt.Errorf("mitra %s not found", mitraID)
	}

	approval := entity.ApprovalStatus(req.Approval)
	if err := s.repo.Mitra.UpdateApproval(ctx, id, approval); err != nil {
		return nil, fmt.Errorf("update mitra approval: %w", err)
	}

	s.log.Info("Mitra approval updated",
		zap.String("mitra_id", mitraID),
		zap.String("approval_status", req.Approval),
	)

	mitra.Approval = approval
	resp := response.MitraToResponse(mitra)
	return &resp, nil
}
