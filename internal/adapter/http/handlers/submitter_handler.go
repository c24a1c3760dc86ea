package handlers

import (
	"errors"
	"net/http"

	request "rpa_chamados/internal/adapter/http/dto/request"
	response "rpa_chamados/internal/adapter/http/dto/response"
	"rpa_chamados/internal/usecase"
	"rpa_chamados/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSubmitterPayload = pkg.NewDomainErrorSimple("INVALID_SUBMITTER_INPUT", "Invalid submitter payload", http.StatusBadRequest)
)

type SubmitterHandler struct {
	usecase usecase.ISubmitterUseCase
}

func NewSubmitterHandler(uc usecase.ISubmitterUseCase) *SubmitterHandler {
	return &SubmitterHandler{usecase: uc}
}

func (h *SubmitterHandler) GetSubmitterByID(c *gin.Context) {
	submitter, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubmitterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmitter(submitter))
}

func (h *SubmitterHandler) GetSubmitters(c *gin.Context) {
	ctx := c.Request.Context()

	if email := c.Query("email"); email != "" {
		submitter, err := h.usecase.GetByEmail(ctx, email)
		if err != nil {
			appErr := mapSubmitterError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromSubmitter(submitter))
		return
	}

	submitters, err := h.usecase.GetAll(ctx)
	if err != nil {
		appErr := mapSubmitterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmitters(submitters))
}

// UpdateSubmitterStatus toggles the active flag; only admins may do it.
func (h *SubmitterHandler) UpdateSubmitterStatus(c *gin.Context) {
	var payload request.SubmitterStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsActive == nil {
		c.JSON(errInvalidSubmitterPayload.HTTPStatus, errInvalidSubmitterPayload.ToHTTPError())
		return
	}

	submitter, err := h.usecase.UpdateActiveStatus(c.Request.Context(), callerIdentity(c), c.Param("id"), *payload.IsActive)
	if err != nil {
		appErr := mapSubmitterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmitter(submitter))
}

func mapSubmitterError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubmitterInput):
		return pkg.NewDomainErrorSimple("INVALID_SUBMITTER_INPUT", "Invalid submitter payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmitterNotFound):
		return pkg.NewDomainErrorSimple("SUBMITTER_NOT_FOUND", "Submitter not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCallerNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller is not allowed to perform this operation", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
