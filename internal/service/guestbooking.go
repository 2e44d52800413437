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

type CustomerDetails struct {
	FirstName   string `json:"firstName" validate:"required,max=50,personname"`
	LastName    string `json:"lastName" validate:"required,max=50,personname"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
}

type GuestBookingRequest struct {
	Customer    CustomerDetails `json:"customer" validate:"required"`
	HotelID     uint            `json:"hotelId" validate:"required"`
	BookingDate models.DateTime `json:"bookingDate" validate:"required,future"`
}

// GuestBookingService books a hotel for a customer given by their details
// rather than by id, registering the customer when the email is new.
type GuestBookingService struct {
	store     *store.Store
	customers *CustomerService
	bookings  *BookingService
	logger    *zap.Logger
}

func NewGuestBookingService(st *store.Store, customers *CustomerService, bookings *BookingService, logger *zap.Logger) *GuestBookingService {
	return &GuestBookingService{store: st, customers: customers, bookings: bookings, logger: logger}
}

// Create registers the customer if needed and books the hotel inside one
// transaction. On any error nothing is written and the error is returned
// as raised.
func (s *GuestBookingService) Create(ctx context.Context, req GuestBookingRequest) (*models.Booking, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var booking *models.Booking
	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		customer, err := tx.FindCustomerByEmail(ctx, req.Customer.Email)
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Info("guest is a new customer", zap.String("email", req.Customer.Email))
			customer = &models.Customer{
				FirstName:   req.Customer.FirstName,
				LastName:    req.Customer.LastName,
				Email:       req.Customer.Email,
				PhoneNumber: req.Customer.PhoneNumber,
			}
			err = s.customers.withStore(tx).Create(ctx, customer)
		}
		if err != nil {
			return err
		}

		if _, err := tx.FindHotelByID(ctx, req.HotelID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperror.ErrHotelNotFound
			}
			return err
		}

		booking, err = s.bookings.withStore(tx).Create(ctx, &models.Booking{
			CustomerID:  customer.ID,
			HotelID:     req.HotelID,
			BookingDate: req.BookingDate.Time,
		})
		return err
	})
	if err != nil {
		s.logger.Warn("guest booking rolled back", zap.String("email", req.Customer.Email), zap.Error(err))
		return nil, err
	}

	return booking, nil
}
