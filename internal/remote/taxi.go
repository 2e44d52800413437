package remote

import (
	"context"
	"fmt"
	"net/http"
)

type TaxiClient struct {
	client
}

func NewTaxiClient(baseURL string, httpClient *http.Client) *TaxiClient {
	return &TaxiClient{client: newClient(baseURL, httpClient)}
}

func (c *TaxiClient) ListTaxis(ctx context.Context) ([]Taxi, error) {
	var taxis []Taxi
	if err := c.do(ctx, http.MethodGet, "/taxis", nil, &taxis); err != nil {
		return nil, err
	}
	return taxis, nil
}

func (c *TaxiClient) GetTaxi(ctx context.Context, id uint) (*Taxi, error) {
	var t Taxi
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/taxis/%d", id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TaxiClient) GetCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	return c.getCustomerByEmail(ctx, email)
}

func (c *TaxiClient) CreateCustomer(ctx context.Context, cust Customer) (*Customer, error) {
	return c.createCustomer(ctx, cust)
}

func (c *TaxiClient) CreateBooking(ctx context.Context, b TaxiBooking) (*TaxiBooking, error) {
	var created TaxiBooking
	if err := c.do(ctx, http.MethodPost, "/bookings", b, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *TaxiClient) DeleteBooking(ctx context.Context, id uint) error {
	return c.deleteBooking(ctx, id)
}
