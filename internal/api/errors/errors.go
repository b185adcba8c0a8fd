// Package errors defines errors that are returned to API clients verbatim.
package errors

import (
	"fmt"
	"net/http"
)

// APIError is an error with a client-facing status and message.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// WithDetails returns a copy of e carrying details.
func (e *APIError) WithDetails(details string) *APIError {
	out := *e
	out.Details = details
	return &out
}

// NewErrMissingAuthorizationToken is returned when no bearer token is sent.
func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Missing authorization token"}
}

// NewErrInvalidAuthorizationToken is returned when the bearer token is rejected.
func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Invalid authorization token"}
}

// NewErrInvalidInput is returned for request bodies that fail validation.
func NewErrInvalidInput(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewErrTopicNotFound is returned when a topic does not exist for the caller.
func NewErrTopicNotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "Topic not found"}
}

// NewErrNoFlashcards is returned when a quiz is requested for a topic without flashcards.
func NewErrNoFlashcards() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "No flashcards found for this topic"}
}

// NewErrMethodNotAllowed is returned for methods a route does not serve.
func NewErrMethodNotAllowed(method string) *APIError {
	return &APIError{Status: http.StatusMethodNotAllowed, Message: fmt.Sprintf("Method %s Not Allowed", method)}
}

// NewErrInternal is returned for failures the client cannot act on.
func NewErrInternal(message string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: message}
}
