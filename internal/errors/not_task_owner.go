package errors

import "net/http"

var ErrNotTaskOwner = &Exception{
	Message:    "only the charity that owns this task may respond to it",
	StatusCode: http.StatusForbidden,
}
