package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hbowden/practice_manager_app/internal/core/ports/services"
	"github.com/hbowden/practice_manager_app/internal/dto"
)

// unitHandler handles HTTP requests for charge records nested under a
// breakdown.
type unitHandler struct {
	unitService portssvc.UnitSvcFacade
}

func newUnitHandler(us portssvc.UnitSvcFacade) *unitHandler {
	return &unitHandler{unitService: us}
}

// registerUnitRoutes registers the unit routes scoped to a breakdown.
func registerUnitRoutes(rg *gin.RouterGroup, unitService portssvc.UnitSvcFacade) {
	h := newUnitHandler(unitService)

	breakdowns := rg.Group("/breakdowns")
	{
		breakdowns.POST("/:id/units", h.createUnit)
		breakdowns.GET("/:id/units", h.listUnits)
	}
}

func (h *unitHandler) createUnit(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	unit, err := h.unitService.CreateUnit(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to create section unit")
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToUnitResponse(unit)))
}

func (h *unitHandler) listUnits(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	units, err := h.unitService.ListUnitsForBreakdown(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list section units")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListUnitsResponse(units)))
}
