package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "charity-connect.com/charity-connect/internal/data_models"
)

func ValidateRegisterCharityRequest(r *dto.RegisterCharityRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if len(r.Name) > 50 {
		return echo.NewHTTPError(http.StatusBadRequest, "name must be at most 50 characters")
	}
	if r.RegNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reg_number is required")
	}
	if len(r.RegNumber) > 10 {
		return echo.NewHTTPError(http.StatusBadRequest, "reg_number must be at most 10 characters")
	}
	return nil
}
