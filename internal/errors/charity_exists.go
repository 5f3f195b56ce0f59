package errors

import "net/http"

var ErrCharityExists = &Exception{
	Message:    "user is already registered as a charity",
	StatusCode: http.StatusBadRequest,
}
