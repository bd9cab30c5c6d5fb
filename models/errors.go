package models

import "fmt"

// Error codes shared by the availability core, the booking flow and the HTTP layer.
const (
	CodeInvalidDate       = "invalidDate"
	CodeInvalidService    = "invalidService"
	CodeInvalidSlotShape  = "invalidSlotShape"
	CodeSlotAlreadyBooked = "slotAlreadyBooked"
	CodeWindowNotOffered  = "windowNotOffered"
	CodeNotFound          = "notFound"
	CodeForbidden         = "forbidden"
)

// DomainError carries a stable code next to a human readable message.
// errors.Is matches two DomainErrors when their codes are equal.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidDate       = &DomainError{Code: CodeInvalidDate, Message: "invalid date"}
	ErrInvalidService    = &DomainError{Code: CodeInvalidService, Message: "invalid service"}
	ErrInvalidSlotShape  = &DomainError{Code: CodeInvalidSlotShape, Message: "invalid slot shape"}
	ErrSlotAlreadyBooked = &DomainError{Code: CodeSlotAlreadyBooked, Message: "this time is no longer available"}
	ErrWindowNotOffered  = &DomainError{Code: CodeWindowNotOffered, Message: "this time is not offered"}
	ErrNotFound          = &DomainError{Code: CodeNotFound, Message: "not found"}
	ErrForbidden         = &DomainError{Code: CodeForbidden, Message: "forbidden"}
)

func newError(code, format string, args ...any) error {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func InvalidDate(format string, args ...any) error {
	return newError(CodeInvalidDate, format, args...)
}

func InvalidService(format string, args ...any) error {
	return newError(CodeInvalidService, format, args...)
}

func InvalidSlotShape(format string, args ...any) error {
	return newError(CodeInvalidSlotShape, format, args...)
}

func NotFound(format string, args ...any) error {
	return newError(CodeNotFound, format, args...)
}
