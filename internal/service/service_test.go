package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdg-garage/travel-booking-api/internal/apperror"
	"github.com/gdg-garage/travel-booking-api/internal/database"
	"github.com/gdg-garage/travel-booking-api/internal/models"
	"github.com/gdg-garage/travel-booking-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type services struct {
	db        *gorm.DB
	store     *store.Store
	customers *CustomerService
	hotels    *HotelService
	bookings  *BookingService
	guests    *GuestBookingService
}

func setup(t *testing.T) *services {
	t.Helper()
	db, err := database.Open(":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	st := store.New(db)
	logger := zap.NewNop()
	s := &services{
		db:        db,
		store:     st,
		customers: NewCustomerService(st, logger),
		hotels:    NewHotelService(st, logger),
		bookings:  NewBookingService(st, logger),
	}
	s.guests = NewGuestBookingService(st, s.customers, s.bookings, logger)
	return s
}

func newCustomer(email string) *models.Customer {
	return &models.Customer{FirstName: "Test", LastName: "Account", Email: email, PhoneNumber: "01234567890"}
}

func newHotel(phone string) *models.Hotel {
	return &models.Hotel{Name: "Grand", PhoneNumber: phone, PostCode: "NE12AB"}
}

func daysFromNow(n int) time.Time {
	return time.Now().AddDate(0, 0, n)
}

func seed(t *testing.T, s *services) (*models.Customer, *models.Hotel) {
	t.Helper()
	ctx := context.Background()
	c := newCustomer("test@email.com")
	require.NoError(t, s.customers.Create(ctx, c))
	h := newHotel("01987654321")
	require.NoError(t, s.hotels.Create(ctx, h))
	return c, h
}

func TestCustomerService(t *testing.T) {
	ctx := context.Background()

	t.Run("DuplicateEmail", func(t *testing.T) {
		s := setup(t)
		require.NoError(t, s.customers.Create(ctx, newCustomer("a@example.com")))

		err := s.customers.Create(ctx, newCustomer("a@example.com"))
		assert.ErrorIs(t, err, apperror.ErrDuplicateEmail)
	})

	t.Run("InvalidFields", func(t *testing.T) {
		s := setup(t)
		c := &models.Customer{FirstName: "R2D2", Email: "nope", PhoneNumber: "123"}

		err := s.customers.Create(ctx, c)
		var ve *apperror.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Reasons, "firstName")
		assert.Contains(t, ve.Reasons, "lastName")
		assert.Contains(t, ve.Reasons, "email")
		assert.Contains(t, ve.Reasons, "phoneNumber")
	})

	t.Run("FindByEmailMissing", func(t *testing.T) {
		s := setup(t)
		_, err := s.customers.FindByEmail(ctx, "ghost@example.com")
		var nf *apperror.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.False(t, nf.Referenced)
	})

	t.Run("DeleteRemovesBookings", func(t *testing.T) {
		s := setup(t)
		c, h := seed(t, s)
		b, err := s.bookings.Create(ctx, &models.Booking{CustomerID: c.ID, HotelID: h.ID, BookingDate: daysFromNow(3)})
		require.NoError(t, err)

		require.NoError(t, s.customers.Delete(ctx, c.ID))

		_, err = s.bookings.FindByID(ctx, b.ID)
		var nf *apperror.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("DeleteInUse", func(t *testing.T) {
		s := setup(t)
		c, _ := seed(t, s)
		require.NoError(t, s.store.CreateTravelAgentBooking(ctx, &models.TravelAgentBooking{CustomerID: c.ID, FlightBookingID: 1, TaxiBookingID: 1, HotelBookingID: 1}))

		err := s.customers.Delete(ctx, c.ID)
		assert.ErrorIs(t, err, apperror.ErrCustomerInUse)

		_, err = s.customers.FindByID(ctx, c.ID)
		assert.NoError(t, err)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		s := setup(t)
		err := s.customers.Delete(ctx, 99)
		var nf *apperror.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "No Customer with the id 99 was found!", nf.Message)
	})
}

func TestHotelService(t *testing.T) {
	ctx := context.Background()
	s := setup(t)

	require.NoError(t, s.hotels.Create(ctx, newHotel("01111111111")))
	err := s.hotels.Create(ctx, newHotel("01111111111"))
	assert.ErrorIs(t, err, apperror.ErrDuplicatePhone)

	err = s.hotels.Create(ctx, &models.Hotel{Name: "Bad", PhoneNumber: "01222222222", PostCode: "NE1"})
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Reasons, "postCode")

	_, err = s.hotels.Bookings(ctx, 42)
	var nf *apperror.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestBookingService(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateNormalizesDate", func(t *testing.T) {
		s := setup(t)
		c, h := seed(t, s)
		date := time.Date(2100, 5, 1, 15, 30, 0, 0, time.UTC)

		b, err := s.bookings.Create(ctx, &models.Booking{CustomerID: c.ID, HotelID: h.ID, BookingDate: date})
		require.NoError(t, err)
		assert.NotZero(t, b.ID)
		assert.True(t, b.BookingDate.Equal(time.Date(2100, 5, 1, 0, 0, 0, 0, time.UTC)))
		require.NotNil(t, b.Customer)
		assert.Equal(t, "test@email.com", b.Customer.Email)
	})

	t.Run("LaterToday", func(t *testing.T) {
		s := setup(t)
		c, h := seed(t, s)
		soon := time.Now().Add(5 * time.Minute)

		b, err := s.bookings.Create(ctx, &models.Booking{CustomerID: c.ID, HotelID: h.ID, BookingDate: soon})
		require.NoError(t, err)
		assert.True(t, b.BookingDate.Equal(models.BookingDay(soon)))
	})

	t.Run("SameDayIsDuplicate", func(t *testing.T) {
		s := setup(t)
		c, h := seed(t, s)
		morning := time.Date(2100, 5, 1, 8, 0, 0, 0, time.UTC)
		evening := time.Date(2100, 5, 1, 20, 0, 0, 0, time.UTC)

		_, err := s.bookings.Create(ctx, &models.Booking{CustomerID: c.ID, HotelID: h.ID, BookingDate: morning})
		require.NoError(t, err)
		_, err = s.bookings.Create(ctx, &models.Booking{CustomerID: c.ID, HotelID: h.ID, BookingDate: evening})
		assert.ErrorIs(t, err, apperror.ErrDuplicateBooking)
	})

	t.Run("PastDate", func(t *testing.T) {
		s := setup(t)
		c, h := seed(t, s)

		_, err := s.bookings.Create(ctx, &models.Booking{CustomerID: c.ID, HotelID: h.ID, BookingDate: daysFromNow(-2)})
		var ve *apperror.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Reasons["bookingDate"], "in the past")
	})

	t.Run("UnknownReferences", func(t *testing.T) {
		s := setup(t)
		c, h := seed(t, s)

		_, err := s.bookings.Create(ctx, &models.Booking{CustomerID: 99, HotelID: h.ID, BookingDate: daysFromNow(2)})
		assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)

		_, err = s.bookings.Create(ctx, &models.Booking{CustomerID: c.ID, HotelID: 99, BookingDate: daysFromNow(2)})
		assert.ErrorIs(t, err, apperror.ErrHotelNotFound)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		s := setup(t)
		err := s.bookings.Delete(ctx, 7)
		var nf *apperror.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestGuestBooking(t *testing.T) {
	ctx := context.Background()
	details := CustomerDetails{FirstName: "Guest", LastName: "User", Email: "guest@example.com", PhoneNumber: "01234567890"}

	t.Run("ReusesCustomerByEmail", func(t *testing.T) {
		s := setup(t)
		_, h := seed(t, s)

		first, err := s.guests.Create(ctx, GuestBookingRequest{Customer: details, HotelID: h.ID, BookingDate: models.NewDateTime(daysFromNow(5))})
		require.NoError(t, err)
		second, err := s.guests.Create(ctx, GuestBookingRequest{Customer: details, HotelID: h.ID, BookingDate: models.NewDateTime(daysFromNow(6))})
		require.NoError(t, err)

		assert.Equal(t, first.CustomerID, second.CustomerID)
		customers, err := s.customers.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, customers, 2)
		bookings, err := s.bookings.List(ctx)
		require.NoError(t, err)
		assert.Len(t, bookings, 2)
	})

	t.Run("RollsBackNewCustomer", func(t *testing.T) {
		s := setup(t)

		_, err := s.guests.Create(ctx, GuestBookingRequest{Customer: details, HotelID: 404, BookingDate: models.NewDateTime(daysFromNow(5))})
		assert.ErrorIs(t, err, apperror.ErrHotelNotFound)

		_, err = s.customers.FindByEmail(ctx, details.Email)
		var nf *apperror.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("DuplicateDateRollsBack", func(t *testing.T) {
		s := setup(t)
		c, h := seed(t, s)
		date := daysFromNow(5)
		_, err := s.bookings.Create(ctx, &models.Booking{CustomerID: c.ID, HotelID: h.ID, BookingDate: date})
		require.NoError(t, err)

		_, err = s.guests.Create(ctx, GuestBookingRequest{Customer: details, HotelID: h.ID, BookingDate: models.NewDateTime(date)})
		assert.True(t, errors.Is(err, apperror.ErrDuplicateBooking))

		_, err = s.customers.FindByEmail(ctx, details.Email)
		assert.Error(t, err)
	})

	t.Run("InvalidRequest", func(t *testing.T) {
		s := setup(t)
		_, err := s.guests.Create(ctx, GuestBookingRequest{Customer: CustomerDetails{Email: "x"}})
		var ve *apperror.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Reasons, "customer.email")
		assert.Contains(t, ve.Reasons, "hotelId")
		assert.Contains(t, ve.Reasons, "bookingDate")
	})
}
