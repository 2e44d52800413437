package models

import "time"

type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"index" json:"customerId" validate:"required"`
	Customer    *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty" validate:"-"`
	HotelID     uint      `gorm:"index:idx_hotel_date" json:"hotelId" validate:"required"`
	Hotel       *Hotel    `gorm:"foreignKey:HotelID" json:"hotel,omitempty" validate:"-"`
	BookingDate time.Time `gorm:"index:idx_hotel_date" json:"bookingDate" validate:"required,future"`
	CreatedAt   time.Time `json:"-"`
}

// BookingDay truncates t to the UTC calendar day it falls on. Booking dates
// are compared and stored at day granularity.
func BookingDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
