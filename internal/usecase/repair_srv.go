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

type RepairService interface {
	GetServices(ctx context.Context, req *request.PaginatedRequest, filter repository.RepairServiceFilter) (*response.PaginatedResponse[response.RepairServiceResponse], error)
	GetServiceByID(ctx context.Context, serviceID string) (*response.RepairServiceResponse, error)
	CreateService(ctx context.Context, userID string, req *request.RepairServiceRequest) (*response.RepairServiceResponse, error)
	UpdateService(ctx context.Context, userID, serviceID string, req *request.RepairServiceRequest) (*response.RepairServiceResponse, error)
	DeleteService(ctx context.Context, userID, serviceID string) error
}

type repairService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRepairService(repo *repository.Repository, log *zap.Logger) RepairService {
	return &repairService{
		repo: repo,
		log:  log.With(zap.String("service", "repair")),
	}
}

func (s *repairService) GetServices(ctx context.Context, req *request.PaginatedRequest, filter repository.RepairServiceFilter) (*response.PaginatedResponse[response.RepairServiceResponse], error) {
	services, err := s.repo.Service.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get repair services", zap.Error(err))
		return nil, fmt.Errorf("get repair services: %w", err)
	}

	total, err := s.repo.Service.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count repair services", zap.Error(err))
		return nil, fmt.Errorf("count repair services: %w", err)
	}

	serviceResponses := make([]response.RepairServiceResponse, len(services))
	for i, svc := range services {
		mitraName := ""
		if mitra, err := s.repo.Mitra.FindByID(ctx, svc.MitraID); err == nil && mitra != nil {
			mitraName = mitra.BusinessName
		}
		serviceResponses[i] = response.RepairServiceToResponse(svc, mitraName)
	}

	return response.NewPaginatedResponse(serviceResponses, req.Page, req.PerPage, total), nil
}

func (s *repairService) GetServiceByID(ctx context.Context, serviceID string) (*response.RepairServiceResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", serviceID, err)
	}

	svc, err := s.repo.Service.FindByID(ctx, id)
	if err != nil || svc == nil {
		return nil, fmt.Errorf("repair service %s not found", serviceID)
	}

	mitraName := ""
	if mitra, err := s.repo.Mitra.FindByID(ctx, svc.MitraID); err == nil && mitra != nil {
		mitraName = mitra.BusinessName
	}

	resp := response.RepairServiceToResponse(svc, mitraName)
	return &resp, nil
}

// CreateService hanya untuk mitra yang sudah approved
func (s *repairService) CreateService(ctx context.Context, userID string, req *request.RepairServiceRequest) (*response.RepairServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create repair service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	mitra, err := s.ownedMitra(ctx, userID)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	svc := &entity.RepairService{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MitraID:     mitra.ID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		IsActive:    isActive,
	}

	if err := s.repo.Service.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create repair service: %w", err)
	}

	s.log.Info("Repair service created",
		zap.String("service_id", svc.ID.String()),
		zap.String("mitra_id", mitra.ID.String()),
	)

	resp := response.RepairServiceToResponse(svc, mitra.BusinessName)
	return &resp, nil
}

func (s *repairService) UpdateService(ctx context.Context, userID, serviceID string, req *request.RepairServiceRequest) (*response.RepairServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	mitra, err := s.ownedMitra(ctx, userID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", serviceID, err)
	}

	svc, err := s.repo.Service.FindByID(ctx, id)
	if err != nil || svc == nil {
		return nil, fmt.Errorf("repair service %s not found", serviceID)
	}
	if svc.MitraID != mitra.ID {
		return nil, fmt.Errorf("unauthorized: repair service %s belongs to another mitra", serviceID)
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Category = req.Category
	svc.MinPrice = req.MinPrice
	svc.MaxPrice = req.MaxPrice
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	svc.UpdatedAt = time.Now()

	if err := s.repo.Service.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("update repair service: %w", err)
	}

	resp := response.RepairServiceToResponse(svc, mitra.BusinessName)
	return &resp, nil
}

func (s *repairService) DeleteService(ctx context.Context, userID, serviceID string) error {
	mitra, err := s.ownedMitra(ctx, userID)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(serviceID)
	if err != nil {
		return fmt.Errorf("invalid service ID format %s: %w", serviceID, err)
	}

	svc, err := s.repo.Service.FindByID(ctx, id)
	if err != nil || svc == nil {
		return fmt.Errorf("repair service %s not found", serviceID)
	}
	if svc.MitraID != mitra.ID {
		return fmt.Errorf("unauthorized: repair service %s belongs to another mitra", serviceID)
	}

	if err := s.repo.Service.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete repair service: %w", err)
	}

	return nil
}

func (s *repairService) ownedMitra(ctx context.Context, userID string) (*entity.Mitra, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	mitra, err := s.repo.Mitra.FindByUserID(ctx, uid)
	if err != nil || mitra == nil {
		return nil, fmt.Errorf("mitra profile not found for user %s", userID)
	}
	if mitra.Approval != entity.ApprovalApproved {
		return nil, fmt.Errorf("mitra %s is not approved yet", mitra.ID.String())
	}

	return mitra, nil
}
