package httputil

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidBody         = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty    = errors.New("the request body must not be empty")
	ErrRequestBodyTooLarge = errors.New("the request body is too large")
)

// HTTPError is the body of error responses.
type HTTPError struct {
	Error string `json:"error" example:"the request body must not be empty"`
}

// NewError aborts the request and writes err as body.
func NewError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, HTTPError{
		Error: err.Error(),
	})
}
