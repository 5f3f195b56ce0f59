package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	errs "charity-connect.com/charity-connect/internal/errors"
	"charity-connect.com/charity-connect/internal/services"
)

type Handler struct {
	accounts *services.AccountService
	profiles *services.ProfileService
	tasks    *services.TaskService
	workflow *services.WorkflowService
}

func NewHandler(
	accounts *services.AccountService,
	profiles *services.ProfileService,
	tasks *services.TaskService,
	workflow *services.WorkflowService,
) *Handler {
	return &Handler{
		accounts: accounts,
		profiles: profiles,
		tasks:    tasks,
		workflow: workflow,
	}
}

// respondError maps application errors onto the wire contract: known
// exceptions keep their status and message in a {"detail": ...} body,
// anything else is a plain 500.
func respondError(c echo.Context, err error, fallback string) error {
	var ex *errs.Exception
	if errors.As(err, &ex) {
		return c.JSON(ex.StatusCode, echo.Map{"detail": ex.Message})
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}
