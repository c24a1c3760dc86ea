package handlers

import (
	"errors"
	"net/http"

	response "rpa_chamados/internal/adapter/http/dto/response"
	"rpa_chamados/internal/usecase"
	"rpa_chamados/pkg"

	"github.com/gin-gonic/gin"
)

// DpHandler serves the read-only DP dimension lookups used by the demand
// form: cells, clients per cell and services per cell and client.

type DpHandler struct {
	usecase usecase.IDpUseCase
}

func NewDpHandler(uc usecase.IDpUseCase) *DpHandler {
	return &DpHandler{usecase: uc}
}

func (h *DpHandler) GetCells(c *gin.Context) {
	cells, err := h.usecase.ListCells(c.Request.Context())
	if err != nil {
		appErr := mapDpError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDpDimensions(cells))
}

func (h *DpHandler) GetClientsByCell(c *gin.Context) {
	clients, err := h.usecase.ListClientsByCell(c.Request.Context(), c.Param("cellId"))
	if err != nil {
		appErr := mapDpError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDpDimensions(clients))
}

func (h *DpHandler) GetServicesByCellAndClient(c *gin.Context) {
	services, err := h.usecase.ListServicesByCellAndClient(c.Request.Context(), c.Param("cellId"), c.Param("clientId"))
	if err != nil {
		appErr := mapDpError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDpDimensions(services))
}

func mapDpError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDpQuery):
		return pkg.NewDomainErrorSimple("INVALID_DP_QUERY", "Invalid dimension query", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
