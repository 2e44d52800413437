package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type statusError int

func (e statusError) Error() string   { return "remote returned " + http.StatusText(int(e)) }
func (e statusError) StatusCode() int { return int(e) }

func TestTranslateRemote(t *testing.T) {
	t.Run("KnownStatus", func(t *testing.T) {
		re := TranslateRemote(LegFlight, statusError(http.StatusConflict))
		assert.Equal(t, RemoteConflict, re.Kind)
		assert.Equal(t, http.StatusConflict, re.HTTPStatus())
		assert.Equal(t, re.Message(), re.Error())
	})

	t.Run("UnknownCauseStaysOutOfMessage", func(t *testing.T) {
		cause := errors.New(`Post "http://127.0.0.1:8081/bookings": dial tcp: connection refused`)
		re := TranslateRemote(LegTaxi, cause)

		assert.Equal(t, RemoteUnknown, re.Kind)
		assert.Equal(t, http.StatusInternalServerError, re.HTTPStatus())
		assert.Equal(t, "[ Taxi Booking ] - Something went wrong!", re.Message())
		assert.Contains(t, re.Error(), "connection refused")
		assert.ErrorIs(t, re, cause)
	})

	t.Run("AlreadyTranslated", func(t *testing.T) {
		re := &RemoteError{Leg: LegHotel, Kind: RemoteNotFound}
		assert.Same(t, re, TranslateRemote(LegFlight, re))
	})
}
