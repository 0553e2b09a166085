package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context. userRoleKey holds the role resolved from the session.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetCallerFromContext resolves the authenticated caller from the request
// context. It returns the caller and a boolean indicating if a valid
// session was present.
func GetCallerFromContext(c *gin.Context) (domain.Caller, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return domain.Caller{}, false
	}

	role, ok := c.Request.Context().Value(userRoleKey).(domain.Role)
	if !ok {
		return domain.Caller{}, false
	}

	return domain.Caller{UserID: userID, Role: role}, true
}
