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

type BookingService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewBookingService(st *store.Store, logger *zap.Logger) *BookingService {
	return &BookingService{store: st, logger: logger}
}

func (s *BookingService) withStore(st *store.Store) *BookingService {
	return &BookingService{store: st, logger: s.logger}
}

// Create validates b and inserts it, returning the stored booking with its
// customer and hotel loaded. Field rules see the date as given; it is
// truncated to its UTC day only for the duplicate check and the insert.
func (s *BookingService) Create(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	b.ID = 0
	if err := validation.Struct(b); err != nil {
		return nil, err
	}
	b.BookingDate = models.BookingDay(b.BookingDate)

	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		if err := checkBooking(ctx, tx, b); err != nil {
			return err
		}
		return tx.CreateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.Uint("booking_id", b.ID),
		zap.Uint("hotel_id", b.HotelID),
		zap.Uint("customer_id", b.CustomerID),
		zap.Time("booking_date", b.BookingDate))

	return s.store.FindBookingByID(ctx, b.ID)
}

// checkBooking checks in order that the customer exists, the hotel exists
// and the hotel is free on that day.
func checkBooking(ctx context.Context, st *store.Store, b *models.Booking) error {
	if _, err := st.FindCustomerByID(ctx, b.CustomerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperror.ErrCustomerNotFound
		}
		return err
	}

	if _, err := st.FindHotelByID(ctx, b.HotelID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperror.ErrHotelNotFound
		}
		return err
	}

	existing, err := st.FindBookingsByHotelAndDate(ctx, b.HotelID, b.BookingDate)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return apperror.ErrDuplicateBooking
	}
	return nil
}

func (s *BookingService) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	b, err := s.store.FindBookingByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperror.NotFound("Booking", id)
	}
	return b, err
}

func (s *BookingService) FindByCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	return s.store.FindBookingsByCustomer(ctx, customerID)
}

func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.store.ListBookings(ctx)
}

func (s *BookingService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteBooking(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperror.NotFound("Booking", id)
		}
		return err
	}

	s.logger.Info("booking deleted", zap.Uint("booking_id", id))
	return nil
}
