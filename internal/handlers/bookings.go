package handlers

import (
	"context"

	"github.com/gdg-garage/travel-booking-api/internal/models"
	"github.com/gdg-garage/travel-booking-api/internal/service"
	"go.uber.org/zap"
)

type BookingHandler struct {
	bookings *service.BookingService
	guests   *service.GuestBookingService
	logger   *zap.Logger
}

func NewBookingHandler(bookings *service.BookingService, guests *service.GuestBookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{bookings: bookings, guests: guests, logger: logger}
}

type BookingIDInput struct {
	ID uint `path:"id" doc:"Booking id"`
}

type CreateBookingInput struct {
	Body struct {
		CustomerID  uint            `json:"customerId" doc:"Id of an existing customer"`
		HotelID     uint            `json:"hotelId" doc:"Id of an existing hotel"`
		BookingDate models.DateTime `json:"bookingDate" doc:"Day of the stay, must be in the future"`
	}
}

type GuestBookingInput struct {
	Body service.GuestBookingRequest
}

type CustomerBookingsInput struct {
	CustomerID uint `path:"customerId" doc:"Customer id"`
}

type BookingOutput struct {
	Body *models.Booking
}

type BookingsOutput struct {
	Body []models.Booking
}

func (h *BookingHandler) HandleList(ctx context.Context, _ *struct{}) (*BookingsOutput, error) {
	bookings, err := h.bookings.List(ctx)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &BookingsOutput{Body: bookings}, nil
}

func (h *BookingHandler) HandleGet(ctx context.Context, input *BookingIDInput) (*BookingOutput, error) {
	booking, err := h.bookings.FindByID(ctx, input.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &BookingOutput{Body: booking}, nil
}

func (h *BookingHandler) HandleListByCustomer(ctx context.Context, input *CustomerBookingsInput) (*BookingsOutput, error) {
	bookings, err := h.bookings.FindByCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &BookingsOutput{Body: bookings}, nil
}

func (h *BookingHandler) HandleCreate(ctx context.Context, input *CreateBookingInput) (*BookingOutput, error) {
	booking, err := h.bookings.Create(ctx, &models.Booking{
		CustomerID:  input.Body.CustomerID,
		HotelID:     input.Body.HotelID,
		BookingDate: input.Body.BookingDate.Time,
	})
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &BookingOutput{Body: booking}, nil
}

func (h *BookingHandler) HandleDelete(ctx context.Context, input *BookingIDInput) (*struct{}, error) {
	if err := h.bookings.Delete(ctx, input.ID); err != nil {
		return nil, httpError(h.logger, err)
	}
	return nil, nil
}

// HandleGuestBooking books a hotel for a customer identified by their
// details, registering them on first use.
func (h *BookingHandler) HandleGuestBooking(ctx context.Context, input *GuestBookingInput) (*BookingOutput, error) {
	booking, err := h.guests.Create(ctx, input.Body)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &BookingOutput{Body: booking}, nil
}
