package errors

import "net/http"

var ErrTaskNotAssigned = &Exception{
	Message:    "Task is not assigned yet.",
	StatusCode: http.StatusNotFound,
}
