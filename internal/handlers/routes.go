package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *chi.Mux,
	logger *zap.Logger,
	customerHandler *CustomerHandler,
	hotelHandler *HotelHandler,
	bookingHandler *BookingHandler,
	travelAgentHandler *TravelAgentHandler,
) {
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Must be set before any operation is registered.
	huma.NewError = newError(logger)

	config := huma.DefaultConfig("Travel Booking API", "1.0.0")
	api := humachi.New(r, config)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	created := func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	}

	// Customers
	huma.Get(api, "/customers", customerHandler.HandleList)
	huma.Get(api, "/customers/{id}", customerHandler.HandleGet)
	huma.Get(api, "/customers/email/{email}", customerHandler.HandleGetByEmail)
	huma.Post(api, "/customers", customerHandler.HandleCreate, created)
	huma.Delete(api, "/customers/{id}", customerHandler.HandleDelete)

	// Hotels
	huma.Get(api, "/hotels", hotelHandler.HandleList)
	huma.Get(api, "/hotels/{id}", hotelHandler.HandleGet)
	huma.Get(api, "/hotels/{id}/bookings", hotelHandler.HandleBookings)
	huma.Post(api, "/hotels", hotelHandler.HandleCreate, created)
	huma.Delete(api, "/hotels/{id}", hotelHandler.HandleDelete)

	// Bookings
	huma.Get(api, "/bookings", bookingHandler.HandleList)
	huma.Get(api, "/bookings/{id}", bookingHandler.HandleGet)
	huma.Get(api, "/bookings/customer/{customerId}", bookingHandler.HandleListByCustomer)
	huma.Post(api, "/bookings", bookingHandler.HandleCreate, created)
	huma.Delete(api, "/bookings/{id}", bookingHandler.HandleDelete)
	huma.Post(api, "/guestbooking", bookingHandler.HandleGuestBooking, created)

	// Travel agent bookings
	huma.Get(api, "/travelagentbooking", travelAgentHandler.HandleList)
	huma.Get(api, "/travelagentbooking/{id}", travelAgentHandler.HandleGet)
	huma.Get(api, "/travelagentbooking/customer/{customerId}", travelAgentHandler.HandleListByCustomer)
	huma.Post(api, "/travelagentbooking", travelAgentHandler.HandleCreate, created)
	huma.Delete(api, "/travelagentbooking/{id}", travelAgentHandler.HandleDelete)
}
