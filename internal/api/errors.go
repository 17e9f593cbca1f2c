package api

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/curp/internal/messages"
)

// HTTPError pairs a status code with a catalog key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Translation key (e.g., "error.not_found")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrInvalidRequestBody = HTTPError{Code: http.StatusBadRequest, Key: messages.KeyInvalidRequestBody}
	ErrNotWellFormed      = HTTPError{Code: http.StatusBadRequest, Key: messages.KeyNotWellFormed}
	ErrNotFound           = HTTPError{Code: http.StatusNotFound, Key: messages.KeyNotFound}
	ErrMethodNotAllowed   = HTTPError{Code: http.StatusMethodNotAllowed, Key: messages.KeyMethodNotAllowed}
	ErrQRFailed           = HTTPError{Code: http.StatusInternalServerError, Key: messages.KeyQRFailed}
	ErrInternal           = HTTPError{Code: http.StatusInternalServerError, Key: messages.KeyInternal}
)

// Request body decoding errors.
var (
	ErrMissingContentType   = errors.New("missing content-type header")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrMalformedBody        = errors.New("malformed request body")
)
