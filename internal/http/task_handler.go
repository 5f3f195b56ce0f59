package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"charity-connect.com/charity-connect/internal/constants"
	dto "charity-connect.com/charity-connect/internal/data_models"
	middleware "charity-connect.com/charity-connect/internal/http/middlewares"
	"charity-connect.com/charity-connect/internal/http/validators"
	model "charity-connect.com/charity-connect/internal/models"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task := &model.Task{
		Title:        req.Title,
		Description:  req.Description,
		AgeLimitFrom: req.AgeLimitFrom,
		AgeLimitTo:   req.AgeLimitTo,
	}
	if req.Date != nil {
		// Validated above; dates are day-granular.
		date, _ := time.Parse("2006-01-02", *req.Date)
		task.Date = &date
	}
	if req.GenderLimit != nil {
		gender := constants.Gender(*req.GenderLimit)
		task.GenderLimit = &gender
	}

	caller := middleware.PrincipalFrom(c)
	created, err := h.tasks.CreateTask(c.Request().Context(), caller, task)
	if err != nil {
		return respondError(c, err, "failed to create task")
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListTasks(c echo.Context) error {
	caller := middleware.PrincipalFrom(c)

	tasks, err := h.tasks.ListTasks(c.Request().Context(), caller, c.QueryParams())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	caller := middleware.PrincipalFrom(c)

	task, err := h.tasks.GetTask(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return respondError(c, err, "failed to load task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) RequestTask(c echo.Context) error {
	caller := middleware.PrincipalFrom(c)

	err := h.workflow.RequestAssignment(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		return respondError(c, err, "failed to request task")
	}

	return c.JSON(http.StatusOK, echo.Map{"detail": "Request sent."})
}

func (h *Handler) RespondTask(c echo.Context) error {
	var req dto.TaskResponseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	caller := middleware.PrincipalFrom(c)
	err := h.workflow.RespondToAssignment(
		c.Request().Context(),
		c.Param("id"),
		caller,
		constants.Decision(req.Response),
	)
	if err != nil {
		return respondError(c, err, "failed to respond to task")
	}

	return c.JSON(http.StatusOK, echo.Map{"detail": "Response sent."})
}

func (h *Handler) DoneTask(c echo.Context) error {
	caller := middleware.PrincipalFrom(c)

	err := h.workflow.CompleteTask(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		return respondError(c, err, "failed to complete task")
	}

	return c.JSON(http.StatusOK, echo.Map{"detail": "Task has been done successfully."})
}
