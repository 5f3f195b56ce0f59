package errors

import "net/http"

var ErrBenefactorRequired = &Exception{
	Message:    "a benefactor profile is required for this action",
	StatusCode: http.StatusForbidden,
}
