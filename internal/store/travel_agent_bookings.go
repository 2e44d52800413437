package store

import (
	"context"

	"github.com/gdg-garage/travel-booking-api/internal/models"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateTravelAgentBooking(ctx context.Context, b *models.TravelAgentBooking) error {
	return s.conn(ctx).Omit(clause.Associations).Create(b).Error
}

func (s *Store) FindTravelAgentBookingByID(ctx context.Context, id uint) (*models.TravelAgentBooking, error) {
	var b models.TravelAgentBooking
	if err := s.conn(ctx).Preload("Customer").First(&b, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (s *Store) FindTravelAgentBookingsByCustomer(ctx context.Context, customerID uint) ([]models.TravelAgentBooking, error) {
	var bookings []models.TravelAgentBooking
	err := s.conn(ctx).Preload("Customer").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (s *Store) ListTravelAgentBookings(ctx context.Context) ([]models.TravelAgentBooking, error) {
	var bookings []models.TravelAgentBooking
	err := s.conn(ctx).Preload("Customer").
		Order("customer_id ASC, hotel_booking_id ASC, created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (s *Store) CountTravelAgentBookingsByCustomer(ctx context.Context, customerID uint) (int64, error) {
	var n int64
	err := s.conn(ctx).Model(&models.TravelAgentBooking{}).Where("customer_id = ?", customerID).Count(&n).Error
	return n, err
}

func (s *Store) DeleteTravelAgentBooking(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(&models.TravelAgentBooking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
