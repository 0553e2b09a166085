package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
	portssvc "github.com/hbowden/practice_manager_app/internal/core/ports/services"
	"github.com/hbowden/practice_manager_app/internal/dto"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)              // Admin only
		users.GET("/:id", h.getUser)            // Own or admin
		users.PUT("/:id", h.updateUser)         // Own or admin
		users.PUT("/:id/role", h.updateRole)    // Admin only
		users.DELETE("/:id", h.deleteUser)      // Admin only
		users.POST("/password", h.changePassword)
	}
}

func (h *userHandler) listUsers(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	users, err := h.userService.FindAllUsers(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListUsersResponse(users)))
}

func (h *userHandler) getUser(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user)))
}

func (h *userHandler) updateUser(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user)))
}

func (h *userHandler) updateRole(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		respondError(c, err, "Failed to update role")
		return
	}

	user, err := h.userService.UpdateUserRole(c.Request.Context(), caller, c.Param("id"), role)
	if err != nil {
		respondError(c, err, "Failed to update role")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user)))
}

func (h *userHandler) deleteUser(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("User deleted"))
}

func (h *userHandler) changePassword(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), caller, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err, "Failed to change password")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Password changed"))
}
