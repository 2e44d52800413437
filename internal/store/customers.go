package store

import (
	"context"

	"github.com/gdg-garage/travel-booking-api/internal/models"
)

func (s *Store) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return s.conn(ctx).Create(c).Error
}

func (s *Store) FindCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.conn(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (s *Store) FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var c models.Customer
	if err := s.conn(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// ListCustomers returns customers ordered by last then first name. A
// non-empty name keeps only customers whose first or last name equals it.
func (s *Store) ListCustomers(ctx context.Context, name string) ([]models.Customer, error) {
	q := s.conn(ctx).Order("last_name ASC, first_name ASC")
	if name != "" {
		q = q.Where("first_name = ? OR last_name = ?", name, name)
	}
	var customers []models.Customer
	if err := q.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// DeleteCustomer removes the customer and their hotel bookings. Callers
// wanting both in one unit run it inside Transaction.
func (s *Store) DeleteCustomer(ctx context.Context, id uint) error {
	if err := s.conn(ctx).Where("customer_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
		return err
	}
	res := s.conn(ctx).Delete(&models.Customer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
