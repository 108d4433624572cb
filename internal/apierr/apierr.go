// Package apierr defines the error type handlers push into gin's error list.
// The error responder middleware maps it onto a uniform JSON body.
package apierr

import "net/http"

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest covers validation failures and, deliberately, resources that
// are missing or not owned by the requester. The two cases share a status
// so existence of other users' resources does not leak.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}
