package handlers

import (
	"context"

	"github.com/gdg-garage/travel-booking-api/internal/models"
	"github.com/gdg-garage/travel-booking-api/internal/service"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	customers *service.CustomerService
	logger    *zap.Logger
}

func NewCustomerHandler(customers *service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, logger: logger}
}

type CustomerIDInput struct {
	ID uint `path:"id" doc:"Customer id"`
}

type CustomerEmailInput struct {
	Email string `path:"email" doc:"Customer email address"`
}

type ListCustomersInput struct {
	Name string `query:"name" doc:"Only customers whose first or last name equals this"`
}

type CreateCustomerInput struct {
	Body service.CustomerDetails
}

type CustomerOutput struct {
	Body *models.Customer
}

type CustomersOutput struct {
	Body []models.Customer
}

func (h *CustomerHandler) HandleList(ctx context.Context, input *ListCustomersInput) (*CustomersOutput, error) {
	customers, err := h.customers.List(ctx, input.Name)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &CustomersOutput{Body: customers}, nil
}

func (h *CustomerHandler) HandleGet(ctx context.Context, input *CustomerIDInput) (*CustomerOutput, error) {
	customer, err := h.customers.FindByID(ctx, input.ID)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &CustomerOutput{Body: customer}, nil
}

func (h *CustomerHandler) HandleGetByEmail(ctx context.Context, input *CustomerEmailInput) (*CustomerOutput, error) {
	customer, err := h.customers.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, httpError(h.logger, err)
	}
	return &CustomerOutput{Body: customer}, nil
}

func (h *CustomerHandler) HandleCreate(ctx context.Context, input *CreateCustomerInput) (*CustomerOutput, error) {
	customer := &models.Customer{
		FirstName:   input.Body.FirstName,
		LastName:    input.Body.LastName,
		Email:       input.Body.Email,
		PhoneNumber: input.Body.PhoneNumber,
	}
	if err := h.customers.Create(ctx, customer); err != nil {
		return nil, httpError(h.logger, err)
	}
	return &CustomerOutput{Body: customer}, nil
}

func (h *CustomerHandler) HandleDelete(ctx context.Context, input *CustomerIDInput) (*struct{}, error) {
	if err := h.customers.Delete(ctx, input.ID); err != nil {
		return nil, httpError(h.logger, err)
	}
	return nil, nil
}
