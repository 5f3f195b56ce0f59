package validators

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "charity-connect.com/charity-connect/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if len(r.Title) > 60 {
		return echo.NewHTTPError(http.StatusBadRequest, "title must be at most 60 characters")
	}
	if r.Date != nil {
		if _, err := time.Parse("2006-01-02", *r.Date); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		}
	}
	if r.AgeLimitFrom != nil && r.AgeLimitTo != nil && *r.AgeLimitFrom > *r.AgeLimitTo {
		return echo.NewHTTPError(http.StatusBadRequest, "age_limit_from must not exceed age_limit_to")
	}
	if err := validateGender(r.GenderLimit); err != nil {
		return err
	}
	return nil
}
