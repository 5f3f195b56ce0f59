package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"charity-connect.com/charity-connect/internal/constants"
	dto "charity-connect.com/charity-connect/internal/data_models"
	"charity-connect.com/charity-connect/internal/http/validators"
	model "charity-connect.com/charity-connect/internal/models"
)

func (h *Handler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateSignupRequest(&req); err != nil {
		return err
	}

	user := &model.User{
		Username:    req.Username,
		Address:     req.Address,
		Age:         req.Age,
		Description: req.Description,
		Phone:       req.Phone,
	}
	if req.Gender != nil {
		gender := constants.Gender(*req.Gender)
		user.Gender = &gender
	}

	created, err := h.accounts.Signup(c.Request().Context(), user, req.Password)
	if err != nil {
		return respondError(c, err, "failed to create user")
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	token, user, err := h.accounts.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err, "failed to log in")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token":   token,
		"user_id": user.ID,
	})
}
