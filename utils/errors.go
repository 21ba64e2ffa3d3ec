package utils

import "fmt"

// NotFoundError is returned whenever a lookup by id (or another unique
// field) comes back empty.
type NotFoundError struct {
	Resource string
	Field    string
	Value    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %s", e.Resource, e.Field, e.Value)
}

func NewNotFound(resource, field, value string) error {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// RoomNotAvailableError signals an overlap with an existing CONFIRMED or
// CHECKED_IN booking, or a target room in a state guests cannot move into.
type RoomNotAvailableError struct {
	Message string
}

func (e *RoomNotAvailableError) Error() string { return e.Message }

// BookingStatusError signals a lifecycle transition requested from the
// wrong booking status.
type BookingStatusError struct {
	Message string
}

func (e *BookingStatusError) Error() string { return e.Message }

// DateOrderError covers check-in/check-out and change-date ordering
// violations.
type DateOrderError struct {
	Message string
}

func (e *DateOrderError) Error() string { return e.Message }

// DateFormatError is returned when none of the accepted date layouts match.
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("%q is not a valid date, expected dd-MM-yyyy, dd/MM/yyyy, yyyy-MM-dd or yyyy/MM/dd", e.Value)
}

// ValidationError carries field-level constraint violations from request
// payloads.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError maps unique-constraint violations (duplicate email, phone,
// room number, service name) surfaced by the store layer.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
