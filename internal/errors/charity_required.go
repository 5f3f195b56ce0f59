package errors

import "net/http"

var ErrCharityRequired = &Exception{
	Message:    "a charity profile is required for this action",
	StatusCode: http.StatusForbidden,
}
