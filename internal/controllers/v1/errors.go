package v1

import (
	"errors"
	"net/http"

	"github.com/cashfy/backend/internal/auth"
	"github.com/cashfy/backend/internal/httputil"
	"github.com/cashfy/backend/internal/learning"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/rates"
	"github.com/cashfy/backend/internal/shopping"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

var errMailerNotConfigured = errors.New("sending emails is not configured on this server")

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound),
		errors.Is(err, learning.ErrLessonNotFound),
		errors.Is(err, learning.ErrQuestionNotFound),
		errors.Is(err, shopping.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrTokenMissing),
		errors.Is(err, auth.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrUserEmailNotUnique):
		return http.StatusConflict
	case errors.Is(err, rates.ErrUnavailable),
		errors.Is(err, shopping.ErrSendFailed):
		return http.StatusBadGateway
	case errors.Is(err, errMailerNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, httputil.ErrRequestBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	}

	return http.StatusBadRequest
}
