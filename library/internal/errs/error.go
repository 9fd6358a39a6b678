package errs

import (
	"errors"
	"fmt"
)

// Kinds. Every error below wraps exactly one of them.
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrRuleViolation = errors.New("rule violation")
	ErrUnauthorized  = errors.New("unauthorized")
)

var (
	ErrReaderNotFound    = fmt.Errorf("reader %w", ErrNotFound)
	ErrBookNotFound      = fmt.Errorf("book %w", ErrNotFound)
	ErrGenreNotFound     = fmt.Errorf("genre %w", ErrNotFound)
	ErrCopyNotFound      = fmt.Errorf("copy %w", ErrNotFound)
	ErrLoanNotFound      = fmt.Errorf("loan %w", ErrNotFound)
	ErrFineNotFound      = fmt.Errorf("fine %w", ErrNotFound)
	ErrLibrarianNotFound = fmt.Errorf("librarian %w", ErrNotFound)

	ErrDuplicate       = fmt.Errorf("record already exists: %w", ErrConflict)
	ErrCopyUnavailable = fmt.Errorf("copy is not available for loan: %w", ErrConflict)
	ErrFineExists      = fmt.Errorf("fine for this loan already exists: %w", ErrConflict)
	ErrHasActiveLoans  = fmt.Errorf("record has active loans: %w", ErrConflict)

	ErrLoanLimit        = fmt.Errorf("reader already holds the maximum number of active loans: %w", ErrRuleViolation)
	ErrLoanReturned     = fmt.Errorf("loan is already returned: %w", ErrRuleViolation)
	ErrLoanTooLong      = fmt.Errorf("loan duration would exceed the maximum: %w", ErrRuleViolation)
	ErrOverdueTooLong   = fmt.Errorf("loan is overdue for too long to be extended: %w", ErrRuleViolation)
	ErrFinePaid         = fmt.Errorf("fine is already paid: %w", ErrRuleViolation)
	ErrInvalidTerm      = fmt.Errorf("term must be a positive number of days: %w", ErrRuleViolation)
	ErrInvalidAmount    = fmt.Errorf("amount must be between 0 and 999999.99: %w", ErrRuleViolation)
	ErrReturnBeforeLoan = fmt.Errorf("return date is before the loan date: %w", ErrRuleViolation)
	ErrInvalidCondition = fmt.Errorf("unknown copy condition: %w", ErrRuleViolation)

	ErrBadCredentials = fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
