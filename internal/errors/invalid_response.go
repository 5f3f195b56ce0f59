package errors

import "net/http"

var ErrInvalidResponse = &Exception{
	Message:    `Required field ("A" for accepted / "R" for rejected)`,
	StatusCode: http.StatusBadRequest,
}
