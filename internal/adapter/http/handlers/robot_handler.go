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
	errInvalidRobotPayload = pkg.NewDomainErrorSimple("INVALID_ROBOT_INPUT", "Invalid robot payload", http.StatusBadRequest)
)

type RobotHandler struct {
	usecase usecase.IRobotUseCase
}

func NewRobotHandler(uc usecase.IRobotUseCase) *RobotHandler {
	return &RobotHandler{usecase: uc}
}

func (h *RobotHandler) CreateRobot(c *gin.Context) {
	var payload request.RobotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRobotPayload.HTTPStatus, errInvalidRobotPayload.ToHTTPError())
		return
	}

	robot, err := h.usecase.CreateRobot(c.Request.Context(), callerIdentity(c), payload.ToInput())
	if err != nil {
		appErr := mapRobotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRobot(robot))
}

func (h *RobotHandler) UpdateRobot(c *gin.Context) {
	var payload request.RobotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRobotPayload.HTTPStatus, errInvalidRobotPayload.ToHTTPError())
		return
	}

	robot, err := h.usecase.UpdateRobot(c.Request.Context(), callerIdentity(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapRobotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRobot(robot))
}

func (h *RobotHandler) DeleteRobot(c *gin.Context) {
	if err := h.usecase.DeleteRobotByID(c.Request.Context(), callerIdentity(c), c.Param("id")); err != nil {
		appErr := mapRobotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RobotHandler) GetRobotByID(c *gin.Context) {
	robot, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRobotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRobot(robot))
}

func (h *RobotHandler) GetRobots(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		robots []entities.Robot
		err    error
	)
	switch {
	case c.Query("cell") != "":
		robots, err = h.usecase.ListByCell(ctx, c.Query("cell"))
	case c.Query("execution_type") != "":
		robots, err = h.usecase.ListByExecutionType(ctx, entities.ExecutionType(c.Query("execution_type")))
	case c.Query("status") != "":
		robots, err = h.usecase.ListByStatus(ctx, entities.RobotStatus(c.Query("status")))
	default:
		robots, err = h.usecase.GetAll(ctx)
	}
	if err != nil {
		appErr := mapRobotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRobots(robots))
}

func mapRobotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRobotInput):
		return pkg.NewDomainErrorSimple("INVALID_ROBOT_INPUT", "Invalid robot payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRobotNotFound):
		return pkg.NewDomainErrorSimple("ROBOT_NOT_FOUND", "Robot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCallerNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller is not allowed to perform this operation", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
