package handler

import (
	"errors"
	"net/http"

	"github.com/purehouse/post-service/internal/service"
)

// statusOf keeps "resource does not exist" and "input was invalid" apart:
// clients retry the latter with corrected input, never the former.
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidPostID),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrAuthorRequired),
		errors.Is(err, service.ErrTitleTooLong),
		errors.Is(err, service.ErrAuthorTooLong),
		errors.Is(err, service.ErrExcerptTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
