package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
	"github.com/hbowden/practice_manager_app/internal/core/domain"
	"github.com/hbowden/practice_manager_app/internal/dto"
	"github.com/hbowden/practice_manager_app/internal/middleware"
)

// respondError maps a service error to an HTTP status and the standard
// failure envelope. Persistence and unexpected errors are logged with their
// root cause but surface to the client as a generic message.
func respondError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidEnumValue):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.Fail("Authentication required"))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail("Forbidden"))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("Not found"))
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrConstraintViolation):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail(fallbackMsg))
	}
}

// callerOrAbort resolves the authenticated caller or writes a 401 and
// reports false.
func callerOrAbort(c *gin.Context) (domain.Caller, bool) {
	caller, ok := middleware.GetCallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Authentication required"))
		return domain.Caller{}, false
	}
	return caller, true
}
