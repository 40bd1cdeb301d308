package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrTokenIssuerMissing         = errors.New("token secret key is not configured")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")

	// * Business errors.
	ErrOrderNotFound     = errors.New("order not found")
	ErrLineItemNotFound  = errors.New("order detail not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("stock is not enough")
	ErrInvalidQuantity   = errors.New("the amount must be greater than 0")

	// * Remote errors.
	ErrRemoteNotFound    = errors.New("remote resource not found")
	ErrRemoteUnavailable = errors.New("remote service unavailable")
)

// StockError is returned when a requested quantity exceeds the stock observed at validation time.
type StockError struct {
	Requested   int
	ProductName string
	Available   int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("the amount entered %d exceeds the stock of the product %s with stock %d",
		e.Requested, e.ProductName, e.Available)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}

// RemoteNotFoundError means the remote call succeeded but the resource is absent.
type RemoteNotFoundError struct {
	Resource string
	ID       string
}

func (e *RemoteNotFoundError) Error() string {
	return fmt.Sprintf("remote: %s with uuid %s not found", e.Resource, e.ID)
}

func (e *RemoteNotFoundError) Unwrap() error {
	return ErrRemoteNotFound
}

// UnavailableError is the degraded response produced by a fallback after retries are
// exhausted or the circuit is open.
type UnavailableError struct {
	Dependency string
	Status     int
	Message    string
	Cause      string
}

func NewUnavailableError(dependency string, cause error) *UnavailableError {
	e := &UnavailableError{
		Dependency: dependency,
		Status:     http.StatusServiceUnavailable,
		Message:    dependency + " service is currently unavailable. Please try again later.",
	}
	if cause != nil {
		e.Cause = cause.Error()
	}
	return e
}

func (e *UnavailableError) Error() string {
	if e.Cause == "" {
		return e.Message
	}
	return e.Message + " (" + e.Cause + ")"
}

func (e *UnavailableError) Unwrap() error {
	return ErrRemoteUnavailable
}
