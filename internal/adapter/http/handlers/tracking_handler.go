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
	errInvalidTrackingPayload = pkg.NewDomainErrorSimple("INVALID_TRACKING_INPUT", "Invalid tracking payload", http.StatusBadRequest)
)

// TrackingHandler handles HTTP requests for tracking entries and hour totals.

type TrackingHandler struct {
	usecase usecase.ITrackingUseCase
}

func NewTrackingHandler(uc usecase.ITrackingUseCase) *TrackingHandler {
	return &TrackingHandler{usecase: uc}
}

// CreateTracking godoc
// @Summary      Log hours against a demand
// @Tags         trackings
// @Accept       json
// @Produce      json
// @Param        tracking  body  request.TrackingRequest  true  "Tracking payload"
// @Success      201  {object}  response.TrackingResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /v1/trackings [post]
func (h *TrackingHandler) CreateTracking(c *gin.Context) {
	var payload request.TrackingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrackingPayload.HTTPStatus, errInvalidTrackingPayload.ToHTTPError())
		return
	}

	tracking, err := h.usecase.CreateTracking(c.Request.Context(), callerIdentity(c), payload.ToCreateInput())
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTracking(tracking))
}

func (h *TrackingHandler) UpdateTracking(c *gin.Context) {
	var payload request.TrackingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrackingPayload.HTTPStatus, errInvalidTrackingPayload.ToHTTPError())
		return
	}

	tracking, err := h.usecase.UpdateTracking(c.Request.Context(), callerIdentity(c), payload.ToUpdateInput(c.Param("id")))
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTracking(tracking))
}

func (h *TrackingHandler) DeleteTracking(c *gin.Context) {
	if err := h.usecase.DeleteTrackingByID(c.Request.Context(), callerIdentity(c), c.Param("id")); err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TrackingHandler) GetTrackingByID(c *gin.Context) {
	tracking, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTracking(tracking))
}

func (h *TrackingHandler) GetTrackings(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		trackings []usecase.TrackingWithDemand
		err       error
	)
	switch {
	case c.Query("submitter_id") != "":
		trackings, err = h.usecase.ListBySubmitterID(ctx, c.Query("submitter_id"))
	case c.Query("nature") != "":
		trackings, err = h.usecase.ListByNature(ctx, entities.Nature(c.Query("nature")))
	default:
		trackings, err = h.usecase.GetAll(ctx)
	}
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTrackings(trackings))
}

func (h *TrackingHandler) GetTrackingsBySubmitterID(c *gin.Context) {
	trackings, err := h.usecase.ListBySubmitterID(c.Request.Context(), c.Param("submitterId"))
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTrackings(trackings))
}

func (h *TrackingHandler) GetTrackingsByNature(c *gin.Context) {
	trackings, err := h.usecase.ListByNature(c.Request.Context(), entities.Nature(c.Param("nature")))
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTrackings(trackings))
}

func (h *TrackingHandler) GetTrackingsByDemandID(c *gin.Context) {
	trackings, err := h.usecase.ListByDemandID(c.Request.Context(), c.Param("demandId"))
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTrackings(trackings))
}

// GetTotalHoursByDemandID returns the sum of all hours logged against the
// demand. An unknown demand id yields a 0.0 total, not a 404.
func (h *TrackingHandler) GetTotalHoursByDemandID(c *gin.Context) {
	demandID := c.Param("demandId")

	total, err := h.usecase.TotalHoursByDemandID(c.Request.Context(), demandID)
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTotalHours(demandID, "", total))
}

func (h *TrackingHandler) GetTotalHoursByDemandIDAndNature(c *gin.Context) {
	demandID := c.Param("demandId")
	nature := entities.Nature(c.Param("nature"))

	total, err := h.usecase.TotalHoursByDemandIDAndNature(c.Request.Context(), demandID, nature)
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTotalHours(demandID, nature, total))
}

func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTrackingData):
		return pkg.NewDomainErrorSimple("INVALID_TRACKING_INPUT", "Invalid tracking payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTrackingNotFound):
		return pkg.NewDomainErrorSimple("TRACKING_NOT_FOUND", "Tracking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDemandBlocked):
		return pkg.NewDomainErrorSimple("DEMAND_BLOCKED", "Cannot log hours against a blocked demand", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTrackingRef):
		return pkg.NewDomainErrorSimple("INVALID_REFERENCE", "A referenced record does not exist", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDemandNotFound):
		return pkg.NewDomainErrorSimple("DEMAND_NOT_FOUND", "Demand not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCallerNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller is not allowed to perform this operation", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
