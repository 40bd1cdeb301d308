// Package dto holds the JSON shapes exchanged between the services and the
// mapping functions to and from the domain model.
package dto

import (
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// DataResponse is the envelope of every response body.
type DataResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
	Errors    any    `json:"errors"`
}

// Envelope is DataResponse with a typed payload, used when decoding.
type Envelope[T any] struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Data      *T     `json:"data"`
	Timestamp string `json:"timestamp"`
}

func NewDataResponse(status int, message string, data any, errors any) DataResponse {
	return DataResponse{
		Status:    status,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Format(timestampLayout),
		Errors:    errors,
	}
}

type FieldError struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}
