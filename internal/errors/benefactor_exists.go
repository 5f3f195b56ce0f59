package errors

import "net/http"

var ErrBenefactorExists = &Exception{
	Message:    "user is already registered as a benefactor",
	StatusCode: http.StatusBadRequest,
}
