package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hbowden/practice_manager_app/internal/core/ports/services"
	"github.com/hbowden/practice_manager_app/internal/dto"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
	periodService portssvc.PeriodSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade, ps portssvc.PeriodSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs, periodService: ps}
}

// registerClientRoutes registers client routes plus the nested accounting
// period routes scoped to a client.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade, periodService portssvc.PeriodSvcFacade) {
	h := newClientHandler(clientService, periodService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:id", h.getClient)
		clients.PUT("/:id", h.updateClient)
		clients.DELETE("/:id", h.deleteClient)

		clients.POST("/:id/periods", h.createPeriod)
		clients.GET("/:id/periods", h.listPeriods)
	}
}

func (h *clientHandler) createClient(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToClientResponse(client)))
}

func (h *clientHandler) listClients(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	clients, err := h.clientService.ListClientsForUser(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, "Failed to list clients")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListClientsResponse(clients)))
}

func (h *clientHandler) getClient(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve client")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToClientResponse(client)))
}

func (h *clientHandler) updateClient(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToClientResponse(client)))
}

func (h *clientHandler) deleteClient(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete client")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Client deleted"))
}

func (h *clientHandler) createPeriod(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to create accounting period")
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToPeriodResponse(period)))
}

func (h *clientHandler) listPeriods(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	periods, err := h.periodService.ListPeriodsForClient(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list accounting periods")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListPeriodsResponse(periods)))
}
