package models

import "time"

// Hotel does not hold its bookings; they are looked up by hotel id.
type Hotel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name" validate:"required,max=50,personname"`
	PhoneNumber string    `gorm:"uniqueIndex" json:"phoneNumber" validate:"required,phone"`
	PostCode    string    `json:"postCode" validate:"required,postcode"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
