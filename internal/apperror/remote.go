package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Leg names one of the bookings inside a composite booking.
type Leg string

const (
	LegFlight Leg = "Flight Booking"
	LegTaxi   Leg = "Taxi Booking"
	LegHotel  Leg = "Hotel Booking"
)

type RemoteKind int

const (
	RemoteUnknown RemoteKind = iota
	RemoteBadRequest
	RemoteNotFound
	RemoteConflict
	RemoteUnavailable
)

func (k RemoteKind) String() string {
	switch k {
	case RemoteBadRequest:
		return "bad-request"
	case RemoteNotFound:
		return "not-found"
	case RemoteConflict:
		return "conflict"
	case RemoteUnavailable:
		return "service-unavailable"
	default:
		return "unknown"
	}
}

// StatusCoder is implemented by errors that carry the HTTP status returned
// by a remote system.
type StatusCoder interface {
	StatusCode() int
}

// RemoteError is a failure of one leg of a composite booking, translated
// from whatever the remote system (or the local hotel store) returned.
type RemoteError struct {
	Leg     Leg
	Kind    RemoteKind
	Status  int
	Reasons map[string]string
	Err     error
}

// Error includes the underlying cause of an unknown failure, which may name
// remote URLs or SQL. Use Message for anything sent to a caller.
func (e *RemoteError) Error() string {
	if e.Kind == RemoteUnknown && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message(), e.Err)
	}
	return e.Message()
}

// Message is the caller facing text of the failure.
func (e *RemoteError) Message() string {
	return fmt.Sprintf("[ %s ] - %s", e.Leg, e.describe())
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) describe() string {
	switch e.Kind {
	case RemoteBadRequest:
		return "Bad Request, status code 400. Please check the request data."
	case RemoteNotFound:
		return "Not Found, status code 404. Please check the request"
	case RemoteConflict:
		return "Conflict, status code 409. Booking supplied in request body conflicts with an existing Booking. Please try with another date or commodity"
	case RemoteUnavailable:
		return "Service down, status code 503. Please try again after sometime"
	default:
		return "Something went wrong!"
	}
}

// HTTPStatus is the status the failure is reported with to our callers.
func (e *RemoteError) HTTPStatus() int {
	switch e.Kind {
	case RemoteBadRequest:
		return http.StatusBadRequest
	case RemoteNotFound:
		return http.StatusNotFound
	case RemoteConflict:
		return http.StatusConflict
	case RemoteUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// KindForStatus maps a remote HTTP status onto the error kinds we report.
func KindForStatus(status int) RemoteKind {
	switch status {
	case http.StatusBadRequest:
		return RemoteBadRequest
	case http.StatusNotFound:
		return RemoteNotFound
	case http.StatusConflict:
		return RemoteConflict
	case http.StatusServiceUnavailable:
		return RemoteUnavailable
	default:
		return RemoteUnknown
	}
}

// TranslateRemote wraps err as a RemoteError for leg. Errors without a
// status code (transport failures, timeouts) become RemoteUnknown.
// An err that already is a RemoteError is returned unchanged.
func TranslateRemote(leg Leg, err error) *RemoteError {
	var re *RemoteError
	if errors.As(err, &re) {
		return re
	}
	status := 0
	var sc StatusCoder
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}
	return &RemoteError{
		Leg:    leg,
		Kind:   KindForStatus(status),
		Status: status,
		Err:    err,
	}
}

// IsRemoteNotFound reports whether err carries a remote 404.
func IsRemoteNotFound(err error) bool {
	var sc StatusCoder
	return errors.As(err, &sc) && sc.StatusCode() == http.StatusNotFound
}
