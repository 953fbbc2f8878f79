package app_error

import (
	"errors"

	"github.com/gin-gonic/gin"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// New attaches an HTTP status to an error.
func New(err error, status int) error {
	return statusError{error: err, status: status}
}

// HTTPStatus returns the status attached to err, or fallback.
func HTTPStatus(err error, fallback int) int {
	var se statusError
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	return fallback
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}
