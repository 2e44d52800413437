package remote

import (
	"context"
	"fmt"
	"net/http"
)

type FlightClient struct {
	client
}

func NewFlightClient(baseURL string, httpClient *http.Client) *FlightClient {
	return &FlightClient{client: newClient(baseURL, httpClient)}
}

func (c *FlightClient) ListFlights(ctx context.Context) ([]Flight, error) {
	var flights []Flight
	if err := c.do(ctx, http.MethodGet, "/flights", nil, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *FlightClient) GetFlight(ctx context.Context, id uint) (*Flight, error) {
	var f Flight
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/flights/%d", id), nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *FlightClient) GetCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	return c.getCustomerByEmail(ctx, email)
}

func (c *FlightClient) CreateCustomer(ctx context.Context, cust Customer) (*Customer, error) {
	return c.createCustomer(ctx, cust)
}

func (c *FlightClient) CreateBooking(ctx context.Context, b FlightBooking) (*FlightBooking, error) {
	var created FlightBooking
	if err := c.do(ctx, http.MethodPost, "/bookings", b, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *FlightClient) DeleteBooking(ctx context.Context, id uint) error {
	return c.deleteBooking(ctx, id)
}
