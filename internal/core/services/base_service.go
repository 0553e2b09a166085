package services

import (
	"context"
	"log/slog"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
	"github.com/hbowden/practice_manager_app/internal/core/domain"
	"github.com/hbowden/practice_manager_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireAuthenticated rejects callers without a resolved identity. The
// middleware normally guarantees this; the service boundary re-checks so the
// core is safe without a web server in front of it.
func (s *BaseService) RequireAuthenticated(caller domain.Caller) error {
	if caller.UserID == "" {
		return apperrors.ErrUnauthenticated
	}
	return nil
}

// RequireAdmin rejects callers that do not hold the admin role. The check
// runs before any storage access is attempted.
func (s *BaseService) RequireAdmin(caller domain.Caller) error {
	if err := s.RequireAuthenticated(caller); err != nil {
		return err
	}
	if !caller.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}
