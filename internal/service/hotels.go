package service

import (
	"context"
	"errors"

	"github.com/gdg-garage/travel-booking-api/internal/apperror"
	"github.com/gdg-garage/travel-booking-api/internal/models"
	"github.com/gdg-garage/travel-booking-api/internal/store"
	"github.com/gdg-garage/travel-booking-api/internal/validation"
	"go.uber.org/zap"
)

type HotelService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewHotelService(st *store.Store, logger *zap.Logger) *HotelService {
	return &HotelService{store: st, logger: logger}
}

// Create validates h and inserts it. The phone number must not belong to
// another hotel.
func (s *HotelService) Create(ctx context.Context, h *models.Hotel) error {
	h.ID = 0
	if err := validation.Struct(h); err != nil {
		return err
	}

	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		_, err := tx.FindHotelByPhone(ctx, h.PhoneNumber)
		switch {
		case err == nil:
			return apperror.ErrDuplicatePhone
		case !errors.Is(err, store.ErrNotFound):
			return err
		}
		return tx.CreateHotel(ctx, h)
	})
	if err != nil {
		return err
	}

	s.logger.Info("hotel created", zap.Uint("hotel_id", h.ID), zap.String("name", h.Name))
	return nil
}

func (s *HotelService) FindByID(ctx context.Context, id uint) (*models.Hotel, error) {
	h, err := s.store.FindHotelByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperror.NotFound("Hotel", id)
	}
	return h, err
}

func (s *HotelService) List(ctx context.Context, name string) ([]models.Hotel, error) {
	return s.store.ListHotels(ctx, name)
}

// Bookings lists the bookings made for hotel id.
func (s *HotelService) Bookings(ctx context.Context, id uint) ([]models.Booking, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.store.FindBookingsByHotel(ctx, id)
}

// Delete removes the hotel together with its bookings.
func (s *HotelService) Delete(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		return tx.DeleteHotel(ctx, id)
	})
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NotFound("Hotel", id)
	}
	if err != nil {
		return err
	}

	s.logger.Info("hotel deleted", zap.Uint("hotel_id", id))
	return nil
}
