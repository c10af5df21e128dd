package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type Status string

// The session cookie is missing or was rejected
const Unauthorized Status = "Unauthorized"

// The puzzle or its input is not available (yet)
const NotFound Status = "NotFound"

// The site asked us to slow down
const RateLimited Status = "RateLimited"

// A network error occured -- the request may succeed if retried
const NetworkError Status = "NetworkError"

// No outcome for this error known
const UnknownError Status = "UnknownError"

type Error struct {
	Status  Status
	Message string
}

var _ error = &Error{}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

func Errorf(status Status, format string, args ...interface{}) error {
	return &Error{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

func Unauthorizedf(format string, args ...interface{}) error {
	return Errorf(Unauthorized, format, args...)
}

// Used when the day is not unlocked or does not exist.
func NotFoundf(format string, args ...interface{}) error {
	return Errorf(NotFound, format, args...)
}

func RateLimitedf(format string, args ...interface{}) error {
	return Errorf(RateLimited, format, args...)
}

func NetworkErrorf(format string, args ...interface{}) error {
	return Errorf(NetworkError, format, args...)
}

func Unknownf(format string, args ...interface{}) error {
	return Errorf(UnknownError, format, args...)
}

// FromStatusCode classifies a failed HTTP response.
func FromStatusCode(code int, format string, args ...interface{}) error {
	switch code {
	case http.StatusUnauthorized, http.StatusBadRequest, http.StatusForbidden:
		// the site answers a bad session with 400
		return Unauthorizedf(format, args...)
	case http.StatusNotFound:
		return NotFoundf(format, args...)
	case http.StatusTooManyRequests:
		return RateLimitedf(format, args...)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return NetworkErrorf(format, args...)
	}
	return Unknownf(format, args...)
}

// StatusOf returns the status of err, or UnknownError if it has none.
func StatusOf(err error) Status {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return UnknownError
}
