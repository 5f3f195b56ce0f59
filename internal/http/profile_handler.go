package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"charity-connect.com/charity-connect/internal/constants"
	dto "charity-connect.com/charity-connect/internal/data_models"
	middleware "charity-connect.com/charity-connect/internal/http/middlewares"
	"charity-connect.com/charity-connect/internal/http/validators"
)

func (h *Handler) RegisterBenefactor(c echo.Context) error {
	var req dto.RegisterBenefactorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateRegisterBenefactorRequest(&req); err != nil {
		return err
	}

	caller := middleware.PrincipalFrom(c)
	benefactor, err := h.profiles.RegisterBenefactor(
		c.Request().Context(),
		caller.UserID,
		constants.ExperienceLevel(req.Experience),
		req.FreeTimePerWeek,
	)
	if err != nil {
		return respondError(c, err, "failed to register benefactor")
	}

	return c.JSON(http.StatusCreated, benefactor)
}

func (h *Handler) RegisterCharity(c echo.Context) error {
	var req dto.RegisterCharityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateRegisterCharityRequest(&req); err != nil {
		return err
	}

	caller := middleware.PrincipalFrom(c)
	charity, err := h.profiles.RegisterCharity(
		c.Request().Context(),
		caller.UserID,
		req.Name,
		req.RegNumber,
	)
	if err != nil {
		return respondError(c, err, "failed to register charity")
	}

	return c.JSON(http.StatusCreated, charity)
}
