// Package apperror holds the error kinds raised by validators and services.
// The HTTP layer maps each kind to a status code and a reasons map.
package apperror

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries one message per invalid field.
type ValidationError struct {
	Reasons map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Reasons))
	for f := range e.Reasons {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Reasons[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError reports a missing entity. Referenced is set when the
// entity was named inside a request body (a booking's customer or hotel)
// rather than addressed directly.
type NotFoundError struct {
	Resource   string
	Message    string
	Referenced bool
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NotFound builds the error for an entity addressed by id.
func NotFound(resource string, id any) *NotFoundError {
	return &NotFoundError{
		Resource: strings.ToLower(resource),
		Message:  fmt.Sprintf("No %s with the id %v was found!", resource, id),
	}
}

// ConflictError reports a violated uniqueness rule.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

var (
	ErrCustomerNotFound = &NotFoundError{Resource: "customer", Message: "Customer not found!", Referenced: true}
	ErrHotelNotFound    = &NotFoundError{Resource: "hotel", Message: "Hotel not found!", Referenced: true}

	ErrDuplicateBooking = &ConflictError{Field: "booking", Message: "booking is already registered, please register on another date or hotel"}
	ErrDuplicateEmail   = &ConflictError{Field: "email", Message: "That email is already used, please use a unique email"}
	ErrDuplicatePhone   = &ConflictError{Field: "phoneNumber", Message: "That phone number is already used, please use a unique phone number"}
	ErrCustomerInUse    = &ConflictError{Field: "customer", Message: "Customer still has travel agent bookings, delete them first"}
)
