package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
	"github.com/hbowden/practice_manager_app/internal/core/domain"
	portsrepo "github.com/hbowden/practice_manager_app/internal/core/ports/repositories"
	portssvc "github.com/hbowden/practice_manager_app/internal/core/ports/services"
	"github.com/hbowden/practice_manager_app/internal/dto"
	"github.com/hbowden/practice_manager_app/internal/utils"
)

// userService implements the portssvc.UserSvcFacade interface
type userService struct {
	BaseService
	userRepo   portsrepo.UserRepositoryFacade
	clientRepo portsrepo.ClientReader
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, clientRepo portsrepo.ClientReader) *userService {
	return &userService{
		userRepo:   userRepo,
		clientRepo: clientRepo,
	}
}

// Register creates a new user account. Every account starts with the member
// role; elevation only happens through UpdateUserRole.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if name == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during registration")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Name:          name,
		Email:         email,
		PasswordHash:  hash,
		Role:          domain.RoleMember,
		EmailVerified: false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "SYSTEM",
			LastUpdatedAt: now,
			LastUpdatedBy: "SYSTEM",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("email %s is already registered: %w", email, apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save new user", slog.String("email", email))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// AuthenticateUser checks email/password credentials. Both an unknown email
// and a wrong password surface as the same unauthenticated error so the
// response does not leak which accounts exist.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		s.LogError(ctx, err, "Failed to look up user for authentication")
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthenticated
	}

	return user, nil
}

// GetUserByID returns a user row. Callers may read themselves; anything else
// requires the admin role.
func (s *userService) GetUserByID(ctx context.Context, caller domain.Caller, userID string) (*domain.User, error) {
	if err := s.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if caller.UserID != userID && !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

// FindAllUsers returns every user ordered by name. Admin only.
func (s *userService) FindAllUsers(ctx context.Context, caller domain.Caller) ([]domain.User, error) {
	if err := s.RequireAdmin(caller); err != nil {
		return nil, err
	}
	return s.userRepo.FindUsers(ctx)
}

// UpdateUser applies partial updates to a user's mutable details.
func (s *userService) UpdateUser(ctx context.Context, caller domain.Caller, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if caller.UserID != userID && !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("name cannot be empty: %w", apperrors.ErrValidation)
		}
		user.Name = name
		changed = true
	}
	if req.Image != nil {
		user.Image = req.Image
		changed = true
	}
	if !changed {
		return user, nil
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = caller.UserID
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("target_user_id", userID))
		return nil, err
	}
	return user, nil
}

// UpdateUserRole performs the explicit role elevation action. Admin only.
func (s *userService) UpdateUserRole(ctx context.Context, caller domain.Caller, userID string, role domain.Role) (*domain.User, error) {
	if err := s.RequireAdmin(caller); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = caller.UserID
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user role", slog.String("target_user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User role updated",
		slog.String("target_user_id", userID),
		slog.String("role", string(role)))
	return user, nil
}

// ChangePassword verifies the current password before replacing it. Empty
// fields fail validation before any lookup happens.
func (s *userService) ChangePassword(ctx context.Context, caller domain.Caller, currentPassword, newPassword string) error {
	if err := s.RequireAuthenticated(caller); err != nil {
		return err
	}
	if currentPassword == "" || newPassword == "" {
		return fmt.Errorf("current and new password are required: %w", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, caller.UserID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", apperrors.ErrUnauthenticated)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash new password")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, caller.UserID, hash, caller.UserID); err != nil {
		s.LogError(ctx, err, "Failed to update password")
		return err
	}

	s.LogInfo(ctx, "Password changed")
	return nil
}

// DeleteUser hard-deletes a user. Admin only, self-deletion is blocked, and
// a user who still owns clients cannot be removed. The client count check
// runs before the delete, and the store's restrict rule backs it up inside
// the transaction if clients appear concurrently.
func (s *userService) DeleteUser(ctx context.Context, caller domain.Caller, targetID string) error {
	if err := s.RequireAdmin(caller); err != nil {
		return err
	}
	if caller.UserID == targetID {
		return fmt.Errorf("cannot delete own account: %w", apperrors.ErrForbidden)
	}

	if _, err := s.userRepo.FindUserByID(ctx, targetID); err != nil {
		return err
	}

	count, err := s.clientRepo.CountClientsByUserID(ctx, targetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count clients before user delete", slog.String("target_user_id", targetID))
		return err
	}
	if count > 0 {
		return fmt.Errorf("user has %d client(s) and cannot be deleted: %w", count, apperrors.ErrConstraintViolation)
	}

	tx, err := s.userRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if tx != nil {
			_ = s.userRepo.Rollback(ctx, tx)
		}
	}()

	if err := s.deleteUserInTx(ctx, tx, targetID); err != nil {
		return err
	}
	if err := s.userRepo.Commit(ctx, tx); err != nil {
		return err
	}
	tx = nil

	s.LogInfo(ctx, "User deleted", slog.String("target_user_id", targetID))
	return nil
}

func (s *userService) deleteUserInTx(ctx context.Context, tx pgx.Tx, targetID string) error {
	if err := s.userRepo.DeleteUserTx(ctx, tx, targetID); err != nil {
		if errors.Is(err, apperrors.ErrConstraintViolation) {
			return fmt.Errorf("user still owns clients: %w", apperrors.ErrConstraintViolation)
		}
		s.LogError(ctx, err, "Failed to delete user", slog.String("target_user_id", targetID))
		return err
	}
	return nil
}
