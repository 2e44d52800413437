package models

import "time"

// TravelAgentBooking links the three legs of a composite booking. Flight and
// taxi ids refer to records in the remote systems.
type TravelAgentBooking struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerID      uint      `gorm:"index" json:"customerId"`
	Customer        *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	FlightBookingID uint      `json:"flightBookingId"`
	HotelBookingID  uint      `json:"hotelBookingId"`
	TaxiBookingID   uint      `json:"taxiBookingId"`
	CreatedAt       time.Time `json:"createdOn"`
}
