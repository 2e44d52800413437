// Package service holds the validating writers for customers, hotels and
// bookings and the guest and travel agent booking orchestrators.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdg-garage/travel-booking-api/internal/apperror"
	"github.com/gdg-garage/travel-booking-api/internal/models"
	"github.com/gdg-garage/travel-booking-api/internal/store"
	"github.com/gdg-garage/travel-booking-api/internal/validation"
	"go.uber.org/zap"
)

type CustomerService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewCustomerService(st *store.Store, logger *zap.Logger) *CustomerService {
	return &CustomerService{store: st, logger: logger}
}

func (s *CustomerService) withStore(st *store.Store) *CustomerService {
	return &CustomerService{store: st, logger: s.logger}
}

// Create validates c and inserts it. The email must not belong to another
// customer.
func (s *CustomerService) Create(ctx context.Context, c *models.Customer) error {
	c.ID = 0
	if err := validation.Struct(c); err != nil {
		return err
	}

	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		_, err := tx.FindCustomerByEmail(ctx, c.Email)
		switch {
		case err == nil:
			return apperror.ErrDuplicateEmail
		case !errors.Is(err, store.ErrNotFound):
			return err
		}
		return tx.CreateCustomer(ctx, c)
	})
	if err != nil {
		return err
	}

	s.logger.Info("customer created", zap.Uint("customer_id", c.ID), zap.String("email", c.Email))
	return nil
}

func (s *CustomerService) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	c, err := s.store.FindCustomerByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperror.NotFound("Customer", id)
	}
	return c, err
}

func (s *CustomerService) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	c, err := s.store.FindCustomerByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &apperror.NotFoundError{
			Resource: "customer",
			Message:  fmt.Sprintf("No Customer with the email %s was found!", email),
		}
	}
	return c, err
}

func (s *CustomerService) List(ctx context.Context, name string) ([]models.Customer, error) {
	return s.store.ListCustomers(ctx, name)
}

// Delete removes the customer and their hotel bookings. Customers that
// still own travel agent bookings are refused: deleting them would strand
// the flight and taxi bookings in the remote systems.
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx *store.Store) error {
		n, err := tx.CountTravelAgentBookingsByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperror.ErrCustomerInUse
		}
		return tx.DeleteCustomer(ctx, id)
	})
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NotFound("Customer", id)
	}
	if err != nil {
		return err
	}

	s.logger.Info("customer deleted", zap.Uint("customer_id", id))
	return nil
}
