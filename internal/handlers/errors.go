package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/travel-booking-api/internal/apperror"
	"go.uber.org/zap"
)

// HTTPError is the body of every failed response.
type HTTPError struct {
	Status  int               `json:"-"`
	Message string            `json:"error"`
	Reasons map[string]string `json:"reasons,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) GetStatus() int {
	return e.Status
}

func badRequest(reasons map[string]string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: http.StatusText(http.StatusBadRequest), Reasons: reasons}
}

// httpError converts an error returned by a service into the response
// huma writes.
func httpError(logger *zap.Logger, err error) huma.StatusError {
	var (
		validationErr *apperror.ValidationError
		notFoundErr   *apperror.NotFoundError
		conflictErr   *apperror.ConflictError
		remoteErr     *apperror.RemoteError
	)

	switch {
	case errors.As(err, &validationErr):
		return badRequest(validationErr.Reasons)

	case errors.As(err, &notFoundErr):
		reasons := map[string]string{notFoundErr.Resource: notFoundErr.Message}
		if notFoundErr.Referenced {
			return badRequest(reasons)
		}
		return &HTTPError{Status: http.StatusNotFound, Message: notFoundErr.Message, Reasons: reasons}

	case errors.As(err, &conflictErr):
		return &HTTPError{
			Status:  http.StatusConflict,
			Message: http.StatusText(http.StatusBadRequest),
			Reasons: map[string]string{conflictErr.Field: conflictErr.Message},
		}

	case errors.As(err, &remoteErr):
		status := remoteErr.HTTPStatus()
		if status == http.StatusInternalServerError {
			logger.Error("remote booking failed", zap.String("leg", string(remoteErr.Leg)), zap.Error(remoteErr.Err))
		}
		return &HTTPError{Status: status, Message: remoteErr.Message(), Reasons: remoteErr.Reasons}
	}

	logger.Error("unexpected error", zap.Error(err))
	return &HTTPError{Status: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
}

// newError replaces huma.NewError so request decoding and schema
// violations share the HTTPError body. Schema violations are reported as
// 400 with one reason per offending location.
func newError(logger *zap.Logger) func(status int, msg string, errs ...error) huma.StatusError {
	return func(status int, msg string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}

		var reasons map[string]string
		for _, err := range errs {
			if err == nil {
				continue
			}
			if reasons == nil {
				reasons = map[string]string{}
			}
			var detailer huma.ErrorDetailer
			if errors.As(err, &detailer) {
				d := detailer.ErrorDetail()
				reasons[strings.TrimPrefix(d.Location, "body.")] = d.Message
				continue
			}
			if status >= http.StatusInternalServerError {
				logger.Error(msg, zap.Error(err))
				continue
			}
			reasons["request"] = err.Error()
		}

		if status >= http.StatusInternalServerError {
			reasons = nil
			msg = http.StatusText(status)
		} else if status != 0 {
			if reasons == nil && msg != "" {
				reasons = map[string]string{"request": msg}
			}
			msg = http.StatusText(status)
		}
		return &HTTPError{Status: status, Message: msg, Reasons: reasons}
	}
}
