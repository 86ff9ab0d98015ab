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

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error

	// Admin
	ListUsers(ctx context.Context, req *request.PaginatedRequest, filter repository.UserFilter) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateUserRole(ctx context.Context, userID string, req *request.UpdateRoleRequest) error
	DeactivateUser(ctx context.Context, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	// Username baru tidak boleh bentrok dengan user lain
	if req.Username != user.Username {
		existing, err := s.repo.User.FindByUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username")
		}
		if existing != nil {
			return nil, fmt.Errorf("username already taken")
		}
	}

	user.Username = req.Username
	user.Phone = req.Phone
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil || user == nil {
		return fmt.Errorf("user %s not found", userID)
	}

	if !utils.CheckPassword(user.PasswordHash, req.OldPassword) {
		return fmt.Errorf("validation failed: old password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	if err := s.repo.User.UpdatePassword(ctx, id, hashedPassword); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	// Sesi lama tidak lagi valid setelah ganti password
	if err := s.repo.Session.DeleteByUserID(ctx, id); err != nil {
		s.log.Warn("Failed to revoke sessions after password change",
			zap.Error(err), zap.String("user_id", userID))
	}

	s.log.Info("Password changed", zap.String("user_id", userID))
	return nil
}

func (s *userService) ListUsers(ctx context.Context, req *request.PaginatedRequest, filter repository.UserFilter) (*response.PaginatedResponse[response.UserResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	users, err := s.repo.User.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.repo.User.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (s *userService) UpdateUserRole(ctx context.Context, userID string, req *request.UpdateRoleRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil || user == nil {
		return fmt.Errorf("user %s not found", userID)
	}

	newRole := entity.UserRole(req.Role)
	if user.Role == newRole {
		return nil
	}

	if err := s.repo.User.UpdateRole(ctx, id, newRole); err != nil {
		s.log.Error("Failed to update role", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("update role: %w", err)
	}

	// Sesi lama membawa role lama, paksa login ulang
	if err := s.repo.Session.DeleteByUserID(ctx, id); err != nil {
		s.log.Warn("Failed to revoke sessions after role change",
			zap.Error(err), zap.String("user_id", userID))
	}

	s.log.Info("User role updated",
		zap.String("user_id", userID),
		zap.String("role", req.Role))
	return nil
}

func (s *userService) DeactivateUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil || user == nil {
		return fmt.Errorf("user %s not found", userID)
	}

	user.IsActive = false
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("deactivate user %s: %w", userID, err)
	}

	if err := s.repo.Session.DeleteByUserID(ctx, id); err != nil {
		s.log.Warn("Failed to revoke sessions for deactivated user",
			zap.Error(err), zap.String("user_id", userID))
	}

	s.log.Info("User deactivated", zap.String("user_id", userID))
	return nil
}
