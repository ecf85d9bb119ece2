package rest

import (
	"context"
	"errors"
	"net/http"

	"causalLab/business/psm"
)

type ResponseError struct {
	Message string `json:"message"`
}

// statusFor maps business errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, psm.ErrSessionNotFound), errors.Is(err, psm.ErrSessionClosed):
		return http.StatusNotFound
	case errors.Is(err, psm.ErrCalculating):
		return http.StatusConflict
	case errors.Is(err, psm.ErrUnknownModel),
		errors.Is(err, psm.ErrUnknownMethod),
		errors.Is(err, psm.ErrCaliperOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
