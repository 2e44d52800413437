package store

import (
	"context"

	"github.com/gdg-garage/travel-booking-api/internal/models"
)

func (s *Store) CreateHotel(ctx context.Context, h *models.Hotel) error {
	return s.conn(ctx).Create(h).Error
}

func (s *Store) FindHotelByID(ctx context.Context, id uint) (*models.Hotel, error) {
	var h models.Hotel
	if err := s.conn(ctx).First(&h, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &h, nil
}

func (s *Store) FindHotelByPhone(ctx context.Context, phone string) (*models.Hotel, error) {
	var h models.Hotel
	if err := s.conn(ctx).Where("phone_number = ?", phone).First(&h).Error; err != nil {
		return nil, notFound(err)
	}
	return &h, nil
}

func (s *Store) ListHotels(ctx context.Context, name string) ([]models.Hotel, error) {
	q := s.conn(ctx).Order("name ASC")
	if name != "" {
		q = q.Where("name = ?", name)
	}
	var hotels []models.Hotel
	if err := q.Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// DeleteHotel removes the hotel and every booking made for it.
func (s *Store) DeleteHotel(ctx context.Context, id uint) error {
	if err := s.conn(ctx).Where("hotel_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
		return err
	}
	res := s.conn(ctx).Delete(&models.Hotel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
