package handlers

import (
	"context"
	"errors"
	"net/http"

	request "rpa_chamados/internal/adapter/http/dto/request"
	response "rpa_chamados/internal/adapter/http/dto/response"
	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase"
	"rpa_chamados/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDemandPayload = pkg.NewDomainErrorSimple("INVALID_DEMAND_INPUT", "Invalid demand payload", http.StatusBadRequest)
)

// DemandHandler handles HTTP requests for the demand lifecycle.
type DemandHandler struct {
	usecase usecase.IDemandUseCase
}

func NewDemandHandler(uc usecase.IDemandUseCase) *DemandHandler {
	return &DemandHandler{usecase: uc}
}

// CreateDemand godoc
// @Summary      Create a demand
// @Tags         demands
// @Accept       json
// @Produce      json
// @Param        demand  body  request.DemandRequest  true  "Demand payload"
// @Success      201  {object}  response.DemandResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /v1/demands [post]
func (h *DemandHandler) CreateDemand(c *gin.Context) {
	var payload request.DemandRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDemandPayload.HTTPStatus, errInvalidDemandPayload.ToHTTPError())
		return
	}

	demand, err := h.usecase.CreateDemand(c.Request.Context(), callerIdentity(c), payload.ToCreateInput())
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDemand(demand))
}

// UpdateDemand replaces every field of the demand identified by the path id.
func (h *DemandHandler) UpdateDemand(c *gin.Context) {
	var payload request.DemandRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDemandPayload.HTTPStatus, errInvalidDemandPayload.ToHTTPError())
		return
	}

	demand, err := h.usecase.UpdateDemand(c.Request.Context(), callerIdentity(c), payload.ToUpdateInput(c.Param("id")))
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemand(demand))
}

func (h *DemandHandler) DeleteDemand(c *gin.Context) {
	if err := h.usecase.DeleteDemandByID(c.Request.Context(), callerIdentity(c), c.Param("id")); err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DemandHandler) GetDemandByID(c *gin.Context) {
	demand, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemand(demand))
}

// GetDemands lists demands, optionally filtered by a single query parameter.
// Filters are mutually exclusive; the first recognized one wins.
func (h *DemandHandler) GetDemands(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		demands []entities.Demand
		err     error
	)
	switch {
	case c.Query("status") != "":
		demands, err = h.usecase.ListByStatus(ctx, entities.DemandStatus(c.Query("status")))
	case c.Query("type") != "":
		demands, err = h.usecase.ListByType(ctx, entities.ServiceType(c.Query("type")))
	case c.Query("analyst_id") != "":
		demands, err = h.usecase.ListByAnalystID(ctx, c.Query("analyst_id"))
	case c.Query("focal_point_id") != "":
		demands, err = h.usecase.ListByFocalPointID(ctx, c.Query("focal_point_id"))
	case c.Query("project_id") != "":
		demands, err = h.usecase.ListByProjectID(ctx, c.Query("project_id"))
	case c.Query("robot_id") != "":
		demands, err = h.usecase.ListByRobotID(ctx, c.Query("robot_id"))
	case c.Query("client") != "":
		demands, err = h.usecase.ListByClient(ctx, c.Query("client"))
	case c.Query("service") != "":
		demands, err = h.usecase.ListByService(ctx, c.Query("service"))
	default:
		demands, err = h.usecase.GetAll(ctx)
	}
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemands(demands))
}

func (h *DemandHandler) listDemands(c *gin.Context, fetch func(ctx context.Context) ([]entities.Demand, error)) {
	demands, err := fetch(c.Request.Context())
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemands(demands))
}

// Path-variant listings, kept alongside the query filters for clients that
// consume the segment-style routes.

func (h *DemandHandler) GetDemandsByStatus(c *gin.Context) {
	h.listDemands(c, func(ctx context.Context) ([]entities.Demand, error) {
		return h.usecase.ListByStatus(ctx, entities.DemandStatus(c.Param("status")))
	})
}

func (h *DemandHandler) GetDemandsByType(c *gin.Context) {
	h.listDemands(c, func(ctx context.Context) ([]entities.Demand, error) {
		return h.usecase.ListByType(ctx, entities.ServiceType(c.Param("type")))
	})
}

func (h *DemandHandler) GetDemandsByAnalystID(c *gin.Context) {
	h.listDemands(c, func(ctx context.Context) ([]entities.Demand, error) {
		return h.usecase.ListByAnalystID(ctx, c.Param("analystId"))
	})
}

func (h *DemandHandler) GetDemandsByFocalPointID(c *gin.Context) {
	h.listDemands(c, func(ctx context.Context) ([]entities.Demand, error) {
		return h.usecase.ListByFocalPointID(ctx, c.Param("focalPointId"))
	})
}

func (h *DemandHandler) GetDemandsByProjectID(c *gin.Context) {
	h.listDemands(c, func(ctx context.Context) ([]entities.Demand, error) {
		return h.usecase.ListByProjectID(ctx, c.Param("projectId"))
	})
}

func (h *DemandHandler) GetDemandsByRobotID(c *gin.Context) {
	h.listDemands(c, func(ctx context.Context) ([]entities.Demand, error) {
		return h.usecase.ListByRobotID(ctx, c.Param("robotId"))
	})
}

func (h *DemandHandler) GetDemandsByClient(c *gin.Context) {
	h.listDemands(c, func(ctx context.Context) ([]entities.Demand, error) {
		return h.usecase.ListByClient(ctx, c.Param("client"))
	})
}

func (h *DemandHandler) GetDemandsByService(c *gin.Context) {
	h.listDemands(c, func(ctx context.Context) ([]entities.Demand, error) {
		return h.usecase.ListByService(ctx, c.Param("service"))
	})
}

func mapDemandError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDemandInput):
		return pkg.NewDomainErrorSimple("INVALID_DEMAND_INPUT", "Invalid demand payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDemandAlreadyExists):
		return pkg.NewDomainErrorSimple("DEMAND_ALREADY_EXISTS", "A demand with this name already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrDemandNotFound):
		return pkg.NewDomainErrorSimple("DEMAND_NOT_FOUND", "Demand not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDemandRef):
		return pkg.NewDomainErrorSimple("INVALID_REFERENCE", "A referenced record does not exist", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCallerNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller is not allowed to perform this operation", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
