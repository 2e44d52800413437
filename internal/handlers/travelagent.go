package handlers

import (
	"context"

	"github.com/gdg-garage/travel-booking-api/internal/models"
	"github.com/gdg-garage/travel-booking-api/internal/service"
	"go.uber.org/zap"
)

type TravelAgentHandler struct {
	travel *service.TravelAgentService
	logger *zap.Logger
}

func NewTravelAgentHandler(travel *service.TravelAgentService, logger *zap.Logger) *TravelAgentHandler {
	return &TravelAgentHandler{travel: travel, logger: logger}
}

type TravelAgentBookingIDInput struct {
	ID uint `path:"id" doc:"Travel agent booking id"`
}

type CreateTravelAgentBookingInput struct {
	Body service.TravelAgentBookingRequest
}

type TravelAgentBookingOutput struct {
	Body *models.TravelAgentBooking
}

type TravelAgentBookingsOutput struct {
	Body []models.TravelAgentBooking
}

type TravelAgentBookingResultOutput struct {
	Body *service.TravelAgentBookingResult
}

func (h *TravelAgentHandler) HandleList(ctx context.Context, _ *struct{}) (*TravelAgentBookingsOutput, error) {
	bookings, err := h.travel.List(ctx)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &TravelAgentBookingsOutput{Body: bookings}, nil
}

func (h *TravelAgentHandler) HandleGet(ctx context.Context, input *TravelAgentBookingIDInput) (*TravelAgentBookingOutput, error) {
	booking, err := h.travel.FindByID(ctx, input.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &TravelAgentBookingOutput{Body: booking}, nil
}

func (h *TravelAgentHandler) HandleListByCustomer(ctx context.Context, input *CustomerBookingsInput) (*TravelAgentBookingsOutput, error) {
	bookings, err := h.travel.FindByCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &TravelAgentBookingsOutput{Body: bookings}, nil
}

func (h *TravelAgentHandler) HandleCreate(ctx context.Context, input *CreateTravelAgentBookingInput) (*TravelAgentBookingResultOutput, error) {
	result, err := h.travel.Create(ctx, input.Body)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &TravelAgentBookingResultOutput{Body: result}, nil
}

func (h *TravelAgentHandler) HandleDelete(ctx context.Context, input *TravelAgentBookingIDInput) (*struct{}, error) {
	if err := h.travel.Delete(ctx, input.ID); err != nil {
		return nil, httpError(h.logger, err)
	}
	return nil, nil
}
