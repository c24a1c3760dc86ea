package handlers

import (
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
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid request payload", http.StatusBadRequest)
)

// ServiceRequestHandler handles the intake of chamados (service requests).

type ServiceRequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// CreateRequest godoc
// @Summary      Submit a service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        request  body  request.ServiceRequestRequest  true  "Request payload"
// @Success      201  {object}  response.ServiceRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /v1/requests [post]
func (h *ServiceRequestHandler) CreateRequest(c *gin.Context) {
	var payload request.ServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	if !entities.ValidRequestKind(entities.RequestKind(payload.Kind)) {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateRequest(c.Request.Context(), callerIdentity(c), payload.ToInput())
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

func (h *ServiceRequestHandler) GetRequestByID(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

func (h *ServiceRequestHandler) GetRequests(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		rs  []entities.Request
		err error
	)
	if submitterID := c.Query("submitter_id"); submitterID != "" {
		rs, err = h.usecase.ListBySubmitterID(ctx, submitterID)
	} else {
		rs, err = h.usecase.GetAll(ctx)
	}
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequests(rs))
}

func (h *ServiceRequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.usecase.DeleteRequestByID(c.Request.Context(), callerIdentity(c), c.Param("id")); err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapServiceRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid request payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCallerNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller is not allowed to perform this operation", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
