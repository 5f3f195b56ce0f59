package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "charity-connect.com/charity-connect/internal/data_models"
)

func ValidateRegisterBenefactorRequest(r *dto.RegisterBenefactorRequest) error {
	if r.Experience < 0 || r.Experience > 2 {
		return echo.NewHTTPError(http.StatusBadRequest, "experience must be 0 (beginner), 1 (intermediate) or 2 (expert)")
	}
	if r.FreeTimePerWeek < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "free_time_per_week must not be negative")
	}
	return nil
}
