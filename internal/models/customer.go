package models

import "time"

type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `json:"firstName" validate:"required,max=50,personname"`
	LastName    string    `json:"lastName" validate:"required,max=50,personname"`
	Email       string    `gorm:"uniqueIndex" json:"email" validate:"required,email"`
	PhoneNumber string    `json:"phoneNumber" validate:"required,phone"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
