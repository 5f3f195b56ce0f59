package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "charity-connect.com/charity-connect/internal/data_models"
)

func ValidateSignupRequest(r *dto.SignupRequest) error {
	if r.Username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}
	if len(r.Password) < 8 {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}
	if r.Age != nil && *r.Age < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "age must not be negative")
	}
	if err := validateGender(r.Gender); err != nil {
		return err
	}
	if r.Phone != nil && len(*r.Phone) > 15 {
		return echo.NewHTTPError(http.StatusBadRequest, "phone must be at most 15 characters")
	}
	return nil
}

func validateGender(gender *string) error {
	if gender == nil {
		return nil
	}
	if *gender != "M" && *gender != "F" {
		return echo.NewHTTPError(http.StatusBadRequest, `gender must be "M" or "F"`)
	}
	return nil
}
