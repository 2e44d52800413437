package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdg-garage/travel-booking-api/internal/apperror"
	"github.com/gdg-garage/travel-booking-api/internal/config"
	"github.com/gdg-garage/travel-booking-api/internal/models"
	"github.com/gdg-garage/travel-booking-api/internal/notifier"
	"github.com/gdg-garage/travel-booking-api/internal/remote"
	"github.com/gdg-garage/travel-booking-api/internal/saga"
	"github.com/gdg-garage/travel-booking-api/internal/store"
	"github.com/gdg-garage/travel-booking-api/internal/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// customerDirectory is the customer registry every remote booking system
// exposes.
type customerDirectory interface {
	GetCustomerByEmail(ctx context.Context, email string) (*remote.Customer, error)
	CreateCustomer(ctx context.Context, c remote.Customer) (*remote.Customer, error)
}

// FlightAPI is satisfied by *remote.FlightClient.
type FlightAPI interface {
	customerDirectory
	GetFlight(ctx context.Context, id uint) (*remote.Flight, error)
	CreateBooking(ctx context.Context, b remote.FlightBooking) (*remote.FlightBooking, error)
	DeleteBooking(ctx context.Context, id uint) error
}

// TaxiAPI is satisfied by *remote.TaxiClient.
type TaxiAPI interface {
	customerDirectory
	GetTaxi(ctx context.Context, id uint) (*remote.Taxi, error)
	CreateBooking(ctx context.Context, b remote.TaxiBooking) (*remote.TaxiBooking, error)
	DeleteBooking(ctx context.Context, id uint) error
}

type FlightLeg struct {
	ID          uint            `json:"id,omitempty" validate:"-"`
	FlightID    uint            `json:"flightId" validate:"required"`
	BookingDate models.DateTime `json:"bookingDate" validate:"required,future"`
}

type TaxiLeg struct {
	ID          uint            `json:"id,omitempty" validate:"-"`
	TaxiID      uint            `json:"taxiId" validate:"required"`
	BookingDate models.DateTime `json:"bookingDate" validate:"required,future"`
}

type HotelLeg struct {
	ID          uint            `json:"id,omitempty" validate:"-"`
	HotelID     uint            `json:"hotelId" validate:"required"`
	BookingDate models.DateTime `json:"bookingDate" validate:"required,future"`
}

type TravelAgentBookingRequest struct {
	CustomerID    uint      `json:"customerId" validate:"required"`
	FlightBooking FlightLeg `json:"flightBooking" validate:"required"`
	TaxiBooking   TaxiLeg   `json:"taxiBooking" validate:"required"`
	HotelBooking  HotelLeg  `json:"hotelBooking" validate:"required"`
}

type TravelAgentBookingResult struct {
	ID            uint      `json:"id"`
	CustomerID    uint      `json:"customerId"`
	CreatedOn     time.Time `json:"createdOn"`
	FlightBooking FlightLeg `json:"flightBooking"`
	TaxiBooking   TaxiLeg   `json:"taxiBooking"`
	HotelBooking  HotelLeg  `json:"hotelBooking"`
}

// TravelAgentService books a flight, a taxi and a hotel as one unit. Flight
// and taxi bookings live in remote systems and are made in the name of the
// agency; the hotel booking is local and made for the real customer.
type TravelAgentService struct {
	store    *store.Store
	bookings *BookingService
	flights  FlightAPI
	taxis    TaxiAPI
	agency   config.Agency
	notifier notifier.Notifier
	logger   *zap.Logger
}

func NewTravelAgentService(
	st *store.Store,
	bookings *BookingService,
	flights FlightAPI,
	taxis TaxiAPI,
	agency config.Agency,
	n notifier.Notifier,
	logger *zap.Logger,
) *TravelAgentService {
	if n == nil {
		n = notifier.Nop{}
	}
	return &TravelAgentService{
		store:    st,
		bookings: bookings,
		flights:  flights,
		taxis:    taxis,
		agency:   agency,
		notifier: n,
		logger:   logger,
	}
}

// Create checks every precondition, then runs the booking saga. Either all
// three bookings and the linking record exist afterwards, or the completed
// legs have been cancelled again and the failing step's error is returned.
func (s *TravelAgentService) Create(ctx context.Context, req TravelAgentBookingRequest) (*TravelAgentBookingResult, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	customer, err := s.store.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.ErrCustomerNotFound
		}
		return nil, err
	}
	if _, err := s.store.FindHotelByID(ctx, req.HotelBooking.HotelID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.ErrHotelNotFound
		}
		return nil, err
	}

	flight, err := s.flights.GetFlight(ctx, req.FlightBooking.FlightID)
	if err != nil {
		return nil, lookupError(apperror.LegFlight, "Flight", req.FlightBooking.FlightID, err)
	}
	taxi, err := s.taxis.GetTaxi(ctx, req.TaxiBooking.TaxiID)
	if err != nil {
		return nil, lookupError(apperror.LegTaxi, "Taxi", req.TaxiBooking.TaxiID, err)
	}

	flightAgent, err := s.agencyCustomer(ctx, apperror.LegFlight, s.flights)
	if err != nil {
		return nil, err
	}
	taxiAgent, err := s.agencyCustomer(ctx, apperror.LegTaxi, s.taxis)
	if err != nil {
		return nil, err
	}

	var (
		flightBooking *remote.FlightBooking
		taxiBooking   *remote.TaxiBooking
		hotelBooking  *models.Booking
		record        *models.TravelAgentBooking
	)

	sagaID := uuid.NewString()
	sg := saga.New(sagaID, s.logger)
	sg.OnCompensationFailure = func(ctx context.Context, f saga.CompensationFailure) {
		if err := s.notifier.NotifyCompensationFailure(sagaID, f.Step, f.Err); err != nil {
			s.logger.Warn("failed to report compensation failure", zap.String("saga_id", sagaID), zap.Error(err))
		}
	}

	sg.Add(saga.Step{
		Name: "flight",
		Do: func(ctx context.Context) error {
			b, err := s.flights.CreateBooking(ctx, remote.FlightBooking{
				Customer: *flightAgent,
				Flight:   *flight,
				Date:     req.FlightBooking.BookingDate.Time,
			})
			if err != nil {
				return apperror.TranslateRemote(apperror.LegFlight, err)
			}
			flightBooking = b
			return nil
		},
		Undo: func(ctx context.Context) error {
			return s.flights.DeleteBooking(ctx, flightBooking.ID)
		},
	}).Add(saga.Step{
		Name: "taxi",
		Do: func(ctx context.Context) error {
			b, err := s.taxis.CreateBooking(ctx, remote.TaxiBooking{
				Customer:      *taxiAgent,
				Taxi:          *taxi,
				DateOfBooking: req.TaxiBooking.BookingDate.Time,
			})
			if err != nil {
				return apperror.TranslateRemote(apperror.LegTaxi, err)
			}
			taxiBooking = b
			return nil
		},
		Undo: func(ctx context.Context) error {
			return s.taxis.DeleteBooking(ctx, taxiBooking.ID)
		},
	}).Add(saga.Step{
		Name: "hotel",
		Do: func(ctx context.Context) error {
			b, err := s.bookings.Create(ctx, &models.Booking{
				CustomerID:  customer.ID,
				HotelID:     req.HotelBooking.HotelID,
				BookingDate: req.HotelBooking.BookingDate.Time,
			})
			if err != nil {
				return err
			}
			hotelBooking = b
			return nil
		},
		Undo: func(ctx context.Context) error {
			return s.bookings.Delete(ctx, hotelBooking.ID)
		},
	}).Add(saga.Step{
		Name: "record",
		Do: func(ctx context.Context) error {
			r := &models.TravelAgentBooking{
				CustomerID:      customer.ID,
				FlightBookingID: flightBooking.ID,
				TaxiBookingID:   taxiBooking.ID,
				HotelBookingID:  hotelBooking.ID,
			}
			if err := s.store.CreateTravelAgentBooking(ctx, r); err != nil {
				return fmt.Errorf("persist travel agent booking: %w", err)
			}
			record = r
			return nil
		},
	})

	if err := sg.Run(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("travel agent booking created",
		zap.String("saga_id", sagaID),
		zap.Uint("travel_agent_booking_id", record.ID),
		zap.Uint("customer_id", customer.ID))

	if err := s.notifier.NotifyTravelBooking(*customer, *record); err != nil {
		s.logger.Warn("failed to send booking notification", zap.Uint("travel_agent_booking_id", record.ID), zap.Error(err))
	}

	return &TravelAgentBookingResult{
		ID:         record.ID,
		CustomerID: customer.ID,
		CreatedOn:  record.CreatedAt,
		FlightBooking: FlightLeg{
			ID:          flightBooking.ID,
			FlightID:    flight.ID,
			BookingDate: models.NewDateTime(flightBooking.Date),
		},
		TaxiBooking: TaxiLeg{
			ID:          taxiBooking.ID,
			TaxiID:      taxi.ID,
			BookingDate: models.NewDateTime(taxiBooking.DateOfBooking),
		},
		HotelBooking: HotelLeg{
			ID:          hotelBooking.ID,
			HotelID:     hotelBooking.HotelID,
			BookingDate: models.NewDateTime(hotelBooking.BookingDate),
		},
	}, nil
}

// agencyCustomer returns the agency's customer record in a remote system,
// registering the agency there if the system does not know it yet.
func (s *TravelAgentService) agencyCustomer(ctx context.Context, leg apperror.Leg, dir customerDirectory) (*remote.Customer, error) {
	c, err := dir.GetCustomerByEmail(ctx, s.agency.Email)
	if err == nil {
		return c, nil
	}
	if !apperror.IsRemoteNotFound(err) {
		return nil, apperror.TranslateRemote(leg, err)
	}

	c, err = dir.CreateCustomer(ctx, remote.Customer{
		FirstName:   s.agency.FirstName,
		LastName:    s.agency.LastName,
		Email:       s.agency.Email,
		PhoneNumber: s.agency.PhoneNumber,
	})
	if err != nil {
		return nil, apperror.TranslateRemote(leg, err)
	}
	s.logger.Info("registered agency customer", zap.String("leg", string(leg)), zap.Uint("remote_customer_id", c.ID))
	return c, nil
}

func lookupError(leg apperror.Leg, resource string, id uint, err error) error {
	re := apperror.TranslateRemote(leg, err)
	if re.Kind == apperror.RemoteNotFound {
		re.Reasons = map[string]string{"id": fmt.Sprintf("%s with id %d does not exist", resource, id)}
	}
	return re
}

// Delete cancels the flight, taxi and hotel bookings, in that order, and
// then removes the record. It stops at the first failure and leaves the
// record in place so the delete can be retried; legs that are already gone
// count as cancelled.
func (s *TravelAgentService) Delete(ctx context.Context, id uint) error {
	b, err := s.store.FindTravelAgentBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperror.NotFound("Travel Agent Booking", id)
		}
		return err
	}

	log := s.logger.With(zap.Uint("travel_agent_booking_id", id))

	if err := s.flights.DeleteBooking(ctx, b.FlightBookingID); err != nil {
		if !apperror.IsRemoteNotFound(err) {
			return apperror.TranslateRemote(apperror.LegFlight, err)
		}
		log.Warn("flight booking already gone", zap.Uint("flight_booking_id", b.FlightBookingID))
	}

	if err := s.taxis.DeleteBooking(ctx, b.TaxiBookingID); err != nil {
		if !apperror.IsRemoteNotFound(err) {
			return apperror.TranslateRemote(apperror.LegTaxi, err)
		}
		log.Warn("taxi booking already gone", zap.Uint("taxi_booking_id", b.TaxiBookingID))
	}

	if err := s.bookings.Delete(ctx, b.HotelBookingID); err != nil {
		var nf *apperror.NotFoundError
		if !errors.As(err, &nf) {
			return apperror.TranslateRemote(apperror.LegHotel, err)
		}
		log.Warn("hotel booking already gone", zap.Uint("hotel_booking_id", b.HotelBookingID))
	}

	if err := s.store.DeleteTravelAgentBooking(ctx, id); err != nil {
		return fmt.Errorf("delete travel agent booking %d: %w", id, err)
	}

	log.Info("travel agent booking deleted")
	return nil
}

func (s *TravelAgentService) List(ctx context.Context) ([]models.TravelAgentBooking, error) {
	return s.store.ListTravelAgentBookings(ctx)
}

func (s *TravelAgentService) FindByID(ctx context.Context, id uint) (*models.TravelAgentBooking, error) {
	b, err := s.store.FindTravelAgentBookingByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperror.NotFound("Travel Agent Booking", id)
	}
	return b, err
}

// FindByCustomer returns a not-found error when the customer has no travel
// agent bookings.
func (s *TravelAgentService) FindByCustomer(ctx context.Context, customerID uint) ([]models.TravelAgentBooking, error) {
	bookings, err := s.store.FindTravelAgentBookingsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, &apperror.NotFoundError{
			Resource: "customer",
			Message:  fmt.Sprintf("No Travel Agent Bookings for the customer with id %d were found!", customerID),
		}
	}
	return bookings, nil
}
