package middleware

import (
	"net/http"
	"strings"

	"servisku/internal/data/entity"
	"servisku/internal/data/repository"
	"servisku/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession middleware untuk validasi session token UUID
func AuthSession(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			// Find valid session
			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			// Ambil role dari user supaya role-gate downstream tidak perlu query lagi
			user, err := userRepo.FindByID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to load session user",
					zap.Error(err), zap.String("user_id", session.UserID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || !user.IsActive {
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			// Set context dengan user info DAN token
			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole - middleware cek role user (admin / teknisi / mitra)
func RequireRole(role entity.UserRole, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get role dari context (sudah diset AuthSession)
			currentRole, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Check role
			if currentRole != string(role) {
				logger.Warn("Role check failed",
					zap.String("required", string(role)),
					zap.String("actual", currentRole),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, string(role)+" access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Admin - middleware cek role admin
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, logger)
}

// Technician - middleware cek role teknisi
func Technician(logger *zap.Logger) func(http.Handler) http.Handler {
	return RequireRole(entity.RoleTechnician, logger)
}
