package handlers

import (
	"context"

	"github.com/gdg-garage/travel-booking-api/internal/models"
	"github.com/gdg-garage/travel-booking-api/internal/service"
	"go.uber.org/zap"
)

type HotelHandler struct {
	hotels *service.HotelService
	logger *zap.Logger
}

func NewHotelHandler(hotels *service.HotelService, logger *zap.Logger) *HotelHandler {
	return &HotelHandler{hotels: hotels, logger: logger}
}

type HotelIDInput struct {
	ID uint `path:"id" doc:"Hotel id"`
}

type ListHotelsInput struct {
	Name string `query:"name" doc:"Only hotels whose name contains this"`
}

type CreateHotelInput struct {
	Body struct {
		Name        string `json:"name" doc:"Hotel name"`
		PhoneNumber string `json:"phoneNumber" doc:"11 digits starting with 0"`
		PostCode    string `json:"postCode" doc:"6 alphanumeric characters"`
	}
}

type HotelOutput struct {
	Body *models.Hotel
}

type HotelsOutput struct {
	Body []models.Hotel
}

func (h *HotelHandler) HandleList(ctx context.Context, input *ListHotelsInput) (*HotelsOutput, error) {
	hotels, err := h.hotels.List(ctx, input.Name)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &HotelsOutput{Body: hotels}, nil
}

func (h *HotelHandler) HandleGet(ctx context.Context, input *HotelIDInput) (*HotelOutput, error) {
	hotel, err := h.hotels.FindByID(ctx, input.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &HotelOutput{Body: hotel}, nil
}

func (h *HotelHandler) HandleBookings(ctx context.Context, input *HotelIDInput) (*BookingsOutput, error) {
	bookings, err := h.hotels.Bookings(ctx, input.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &BookingsOutput{Body: bookings}, nil
}

func (h *HotelHandler) HandleCreate(ctx context.Context, input *CreateHotelInput) (*HotelOutput, error) {
	hotel := &models.Hotel{
		Name:        input.Body.Name,
		PhoneNumber: input.Body.PhoneNumber,
		PostCode:    input.Body.PostCode,
	}
	if err := h.hotels.Create(ctx, hotel); err != nil {
		return nil, httpError(h.logger, err)
	}
	return &HotelOutput{Body: hotel}, nil
}

func (h *HotelHandler) HandleDelete(ctx context.Context, input *HotelIDInput) (*struct{}, error) {
	if err := h.hotels.Delete(ctx, input.ID); err != nil {
		return nil, httpError(h.logger, err)
	}
	return nil, nil
}
