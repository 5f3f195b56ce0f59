package errors

import "net/http"

// ErrTaskNotPending keeps the original wire behavior: a state-guard failure
// on an existing task answers 404, same as a missing task.
var ErrTaskNotPending = &Exception{
	Message:    "This task is not pending.",
	StatusCode: http.StatusNotFound,
}
