package errors

import "net/http"

var ErrTaskNotWaiting = &Exception{
	Message:    "This task is not waiting.",
	StatusCode: http.StatusNotFound,
}
