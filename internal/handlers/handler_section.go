package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hbowden/practice_manager_app/internal/core/ports/services"
	"github.com/hbowden/practice_manager_app/internal/dto"
)

// sectionHandler handles HTTP requests scoped to a single accounts section.
type sectionHandler struct {
	sectionService   portssvc.SectionSvcFacade
	breakdownService portssvc.BreakdownSvcFacade
}

func newSectionHandler(ss portssvc.SectionSvcFacade, bs portssvc.BreakdownSvcFacade) *sectionHandler {
	return &sectionHandler{sectionService: ss, breakdownService: bs}
}

// registerSectionRoutes registers section routes plus the nested breakdown
// routes scoped to a section.
func registerSectionRoutes(rg *gin.RouterGroup, sectionService portssvc.SectionSvcFacade, breakdownService portssvc.BreakdownSvcFacade) {
	h := newSectionHandler(sectionService, breakdownService)

	sections := rg.Group("/sections")
	{
		sections.PUT("/:id", h.updateSection)

		sections.POST("/:id/breakdowns", h.createBreakdown)
		sections.GET("/:id/breakdowns", h.listBreakdowns)
	}
}

func (h *sectionHandler) updateSection(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	section, err := h.sectionService.UpdateSection(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update accounts section")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToSectionResponse(section)))
}

func (h *sectionHandler) createBreakdown(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateBreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	breakdown, err := h.breakdownService.CreateBreakdown(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to create section breakdown")
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToBreakdownResponse(breakdown)))
}

func (h *sectionHandler) listBreakdowns(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	breakdowns, err := h.breakdownService.ListBreakdownsForSection(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list section breakdowns")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListBreakdownsResponse(breakdowns)))
}
