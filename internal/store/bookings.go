package store

import (
	"context"
	"time"

	"github.com/gdg-garage/travel-booking-api/internal/models"
	"gorm.io/gorm/clause"
)

// CreateBooking inserts b without touching its Customer or Hotel. It does
// not check the (hotel, date) rule; that is the booking service's job.
func (s *Store) CreateBooking(ctx context.Context, b *models.Booking) error {
	return s.conn(ctx).Omit(clause.Associations).Create(b).Error
}

func (s *Store) FindBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	err := s.conn(ctx).Preload("Customer").Preload("Hotel").First(&b, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (s *Store) FindBookingsByHotelAndDate(ctx context.Context, hotelID uint, date time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.conn(ctx).
		Where("hotel_id = ? AND booking_date = ?", hotelID, date).
		Find(&bookings).Error
	return bookings, err
}

func (s *Store) FindBookingsByCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.conn(ctx).Preload("Customer").Preload("Hotel").
		Where("customer_id = ?", customerID).
		Order("booking_date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (s *Store) FindBookingsByHotel(ctx context.Context, hotelID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.conn(ctx).Preload("Customer").Preload("Hotel").
		Where("hotel_id = ?", hotelID).
		Order("booking_date ASC").
		Find(&bookings).Error
	return bookings, err
}

// ListBookings orders by customer, then hotel, then latest date first.
func (s *Store) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.conn(ctx).Preload("Customer").Preload("Hotel").
		Order("customer_id ASC, hotel_id ASC, booking_date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (s *Store) DeleteBooking(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
