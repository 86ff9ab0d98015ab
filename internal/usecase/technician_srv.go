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

type TechnicianService interface {
	RegisterTechnician(ctx context.Context, userID string, req *request.TechnicianRequest) (*response.TechnicianResponse, error)
	GetTechnicians(ctx context.Context, req *request.PaginatedRequest, filter repository.TechnicianFilter) (*response.PaginatedResponse[response.TechnicianResponse], error)
	GetTechnicianByID(ctx context.Context, technicianID string) (*response.TechnicianResponse, error)
	UpdateApproval(ctx context.Context, technicianID string, req *request.ApprovalRequest) (*response.TechnicianResponse, error)
}

type technicianService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTechnicianService(repo *repository.Repository, log *zap.Logger) TechnicianService {
	return &technicianService{
		repo: repo,
		log:  log.With(zap.String("service", "technician")),
	}
}

// RegisterTechnician membuat profil teknisi dengan status pending.
// Teknisi bisa independen atau terikat mitra yang sudah approved.
func (s *technicianService) RegisterTechnician(ctx context.Context, userID string, req *request.TechnicianRequest) (*response.TechnicianResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register technician validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, uid)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	existing, err := s.repo.Technician.FindByUserID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("check existing technician: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("technician profile already exists for user %s", userID)
	}

	var mitraID *uuid.UUID
	if req.MitraID != nil {
		mid, err := uuid.Parse(*req.MitraID)
		if err != nil {
			return nil, fmt.Errorf("invalid mitra ID format %s: %w", *req.MitraID, err)
		}
		mitra, err := s.repo.Mitra.FindByID(ctx, mid)
		if err != nil || mitra == nil {
			return nil, fmt.Errorf("mitra %s not found", *req.MitraID)
		}
		if mitra.Approval != entity.ApprovalApproved {
			return nil, fmt.Errorf("cannot join mitra %s, mitra is not approved", *req.MitraID)
		}
		mitraID = &mid
	}

	now := time.Now()
	technician := &entity.Technician{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    uid,
		MitraID:   mitraID,
		Specialty: req.Specialty,
		Approval:  entity.ApprovalPending,
	}

	if err := s.repo.Technician.Create(ctx, technician); err != nil {
		return nil, fmt.Errorf("create technician: %w", err)
	}

	s.log.Info("Technician registered",
		zap.String("technician_id", technician.ID.String()),
		zap.String("user_id", userID),
		zap.String("specialty", technician.Specialty),
	)

	resp := response.TechnicianToResponse(technician, user.Username)
	return &resp, nil
}

func (s *technicianService) GetTechnicians(ctx context.Context, req *request.PaginatedRequest, filter repository.TechnicianFilter) (*response.PaginatedResponse[response.TechnicianResponse], error) {
	technicians, err := s.repo.Technician.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get technicians", zap.Error(err))
		return nil, fmt.Errorf("get technicians: %w", err)
	}

	total, err := s.repo.Technician.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count technicians: %w", err)
	}

	technicianResponses := make([]response.TechnicianResponse, len(technicians))
	for i, technician := range technicians {
		username := ""
		if user, err := s.repo.User.FindByID(ctx, technician.UserID); err == nil && user != nil {
			username = user.Username
		}
		technicianResponses[i] = response.TechnicianToResponse(technician, username)
	}

	return response.NewPaginatedResponse(technicianResponses, req.Page, req.PerPage, total), nil
}

func (s *technicianService) GetTechnicianByID(ctx context.Context, technicianID string) (*response.TechnicianResponse, error) {
	id, err := uuid.Parse(technicianID)
	if err != nil {
		return nil, fmt.Errorf("invalid technician ID format %s: %w", technicianID, err)
	}

	technician, err := s.repo.Technician.FindByID(ctx, id)
	if err != nil || technician == nil {
		return nil, fmt.Errorf("technician %s not found", technicianID)
	}

	username := ""
	if user, err := s.repo.User.FindByID(ctx, technician.UserID); err == nil && user != nil {
		username = user.Username
	}

	resp := response.TechnicianToResponse(technician, username)
	return &resp, nil
}

// UpdateApproval hanya dipanggil dari route admin
func (s *technicianService) UpdateApproval(ctx context.Context, technicianID string, req *request.ApprovalRequest) (*response.TechnicianResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(technicianID)
	if err != nil {
		return nil, fmt.Errorf("invalid technician ID format %s: %w", technicianID, err)
	}

	technician, err := s.repo.Technician.FindByID(ctx, id)
	if err != nil || technician == nil {
		return nil, fmt.Errorf("technician %s not found", technicianID)
	}

	approval := entity.ApprovalStatus(req.Approval)
	if err := s.repo.Technician.UpdateApproval(ctx, id, approval); err != nil {
		return nil, fmt.Errorf("update technician approval: %w", err)
	}

	s.log.Info("Technician approval updated",
		zap.String("technician_id", technicianID),
		zap.String("approval_status", req.Approval),
	)

	technician.Approval = approval
	username := ""
	if user, err := s.repo.User.FindByID(ctx, technician.UserID); err == nil && user != nil {
		username = user.Username
	}
	resp := response.TechnicianToResponse(technician, username)
	return &resp, nil
}
