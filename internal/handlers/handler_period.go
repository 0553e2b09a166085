package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hbowden/practice_manager_app/internal/core/ports/services"
	"github.com/hbowden/practice_manager_app/internal/dto"
)

// periodHandler handles HTTP requests scoped to a single accounting period.
type periodHandler struct {
	periodService  portssvc.PeriodSvcFacade
	sectionService portssvc.SectionSvcFacade
}

func newPeriodHandler(ps portssvc.PeriodSvcFacade, ss portssvc.SectionSvcFacade) *periodHandler {
	return &periodHandler{periodService: ps, sectionService: ss}
}

// registerPeriodRoutes registers period routes plus the nested section
// routes scoped to a period.
func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade, sectionService portssvc.SectionSvcFacade) {
	h := newPeriodHandler(periodService, sectionService)

	periods := rg.Group("/periods")
	{
		periods.POST("/:id/complete", h.completePeriod)
		periods.GET("/:id/summary", h.getSummary)

		periods.POST("/:id/sections", h.createSection)
		periods.GET("/:id/sections", h.listSections)
	}
}

func (h *periodHandler) completePeriod(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	period, err := h.periodService.CompletePeriod(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to complete accounting period")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToPeriodResponse(period)))
}

func (h *periodHandler) getSummary(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	summary, err := h.periodService.GetPeriodSummary(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to summarise accounting period")
		return
	}

	c.JSON(http.StatusOK, dto.OK(summary))
}

func (h *periodHandler) createSection(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	section, err := h.sectionService.CreateSection(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to create accounts section")
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToSectionResponse(section)))
}

func (h *periodHandler) listSections(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	sections, err := h.sectionService.ListSectionsForPeriod(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list accounts sections")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListSectionsResponse(sections)))
}
