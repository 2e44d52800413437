package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdg-garage/travel-booking-api/internal/database"
	"github.com/gdg-garage/travel-booking-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(":memory:", zap.NewNop())
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	return New(db)
}

func seed(t *testing.T, s *Store) (*models.Customer, *models.Hotel) {
	t.Helper()
	ctx := context.Background()
	c := &models.Customer{FirstName: "Test", LastName: "Account", Email: "test@email.com", PhoneNumber: "08866754322"}
	require.NoError(t, s.CreateCustomer(ctx, c))
	h := &models.Hotel{Name: "TestHotel", PhoneNumber: "08866754321", PostCode: "123456"}
	require.NoError(t, s.CreateHotel(ctx, h))
	return c, h
}

func TestCustomerLookups(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	c, _ := seed(t, s)

	got, err := s.FindCustomerByEmail(ctx, "test@email.com")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = s.FindCustomerByEmail(ctx, "missing@email.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindCustomerByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := s.ListCustomers(ctx, "Account")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = s.ListCustomers(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBookingsByHotelAndDate(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	c, h := seed(t, s)

	day := models.BookingDay(time.Now().Add(48 * time.Hour))
	require.NoError(t, s.CreateBooking(ctx, &models.Booking{CustomerID: c.ID, HotelID: h.ID, BookingDate: day}))

	found, err := s.FindBookingsByHotelAndDate(ctx, h.ID, day)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = s.FindBookingsByHotelAndDate(ctx, h.ID, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, found)

	byCustomer, err := s.FindBookingsByCustomer(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	require.NotNil(t, byCustomer[0].Hotel)
	assert.Equal(t, "TestHotel", byCustomer[0].Hotel.Name)
}

func TestDeleteHotelCascadesBookings(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	c, h := seed(t, s)

	day := models.BookingDay(time.Now().Add(48 * time.Hour))
	require.NoError(t, s.CreateBooking(ctx, &models.Booking{CustomerID: c.ID, HotelID: h.ID, BookingDate: day}))

	require.NoError(t, s.Transaction(ctx, func(tx *Store) error {
		return tx.DeleteHotel(ctx, h.ID)
	}))

	bookings, err := s.ListBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	assert.ErrorIs(t, s.DeleteHotel(ctx, h.ID), ErrNotFound)
}

func TestTransactionRollsBack(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Transaction(ctx, func(tx *Store) error {
		c := &models.Customer{FirstName: "Roll", LastName: "Back", Email: "rb@email.com", PhoneNumber: "08866754329"}
		if err := tx.CreateCustomer(ctx, c); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.FindCustomerByEmail(ctx, "rb@email.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTravelAgentBookings(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	c, _ := seed(t, s)

	tab := &models.TravelAgentBooking{CustomerID: c.ID, FlightBookingID: 7, HotelBookingID: 8, TaxiBookingID: 9}
	require.NoError(t, s.CreateTravelAgentBooking(ctx, tab))
	assert.NotZero(t, tab.ID)

	n, err := s.CountTravelAgentBookingsByCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.FindTravelAgentBookingByID(ctx, tab.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(7), got.FlightBookingID)
	require.NotNil(t, got.Customer)
	assert.Equal(t, "test@email.com", got.Customer.Email)

	require.NoError(t, s.DeleteTravelAgentBooking(ctx, tab.ID))
	assert.ErrorIs(t, s.DeleteTravelAgentBooking(ctx, tab.ID), ErrNotFound)
}
