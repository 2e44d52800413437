package remote

import "time"

type Customer struct {
	ID          uint   `json:"id,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type Flight struct {
	ID          uint   `json:"id"`
	Number      string `json:"number"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type FlightBooking struct {
	ID       uint      `json:"id,omitempty"`
	Customer Customer  `json:"customer"`
	Flight   Flight    `json:"flight"`
	Date     time.Time `json:"date"`
}

type Taxi struct {
	ID                 uint   `json:"id"`
	RegistrationNumber string `json:"registrationNumber"`
	NumberOfSeats      int    `json:"numberOfSeats"`
}

type TaxiBooking struct {
	ID            uint      `json:"id,omitempty"`
	Customer      Customer  `json:"customer"`
	Taxi          Taxi      `json:"taxi"`
	DateOfBooking time.Time `json:"dateOfBooking"`
}
