package utils

import (
	"errors"
	"fmt"
)

// Error classes. Every error a service returns either is, or wraps, one of these.
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrValidation    = errors.New("validation failed")
	ErrDatabaseError = errors.New("database error")
)

// ServiceError carries a caller-facing message and the class it belongs to.
type ServiceError struct {
	Kind error
	Msg  string
}

func (e *ServiceError) Error() string { return e.Msg }

func (e *ServiceError) Unwrap() error { return e.Kind }

func newErr(kind error, msg string) *ServiceError {
	return &ServiceError{Kind: kind, Msg: msg}
}

var (
	ErrCardNotFound        = newErr(ErrNotFound, "Card not found")
	ErrPlanNotFound        = newErr(ErrNotFound, "Plan not found")
	ErrHouseholdNotFound   = newErr(ErrNotFound, "Household not found")
	ErrBeneficiaryNotFound = newErr(ErrNotFound, "Beneficiary not found")
	ErrNoCardsFound        = newErr(ErrNotFound, "No cards found")

	ErrHouseholdHasCard     = newErr(ErrConflict, "Household already has a card assigned")
	ErrBeneficiaryFinalized = newErr(ErrConflict, "Cannot change completed or rejected beneficiaries")

	ErrInsufficientRole = newErr(ErrForbidden, "Forbidden: insufficient permissions")
	ErrStatusChangeRole = newErr(ErrForbidden, "Only admins can change beneficiary status")

	// ErrCardNumberTaken is raised by storage when a generated number already exists.
	ErrCardNumberTaken = errors.New("card number already taken")
	// ErrCardNumberExhausted means no free card number was found within the retry budget.
	ErrCardNumberExhausted = errors.New("card number generation exhausted")
)

// Validation builds a Validation-class error with a formatted message.
func Validation(format string, args ...any) error {
	return newErr(ErrValidation, fmt.Sprintf(format, args...))
}
