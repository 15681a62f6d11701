package status

import (
	"errors"
	"net/http"
)

// Error kinds for the application lifecycle. Every failure a transition
// can produce wraps exactly one of these, so handlers can map outcomes
// to HTTP statuses without string matching.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrStorage       = errors.New("storage failure")
	ErrAuth          = errors.New("invalid credentials")
	ErrStateConflict = errors.New("state conflict")
)

// HTTPStatus maps an error to the response code its kind calls for.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrStateConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
