package model

import (
	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	StatusActive   LoanStatus = "ACTIVE"
	StatusDueSoon  LoanStatus = "DUE_SOON"
	StatusOverdue  LoanStatus = "OVERDUE"
	StatusReturned LoanStatus = "RETURNED"
)

// DueSoonDays is how close to the due date an active loan counts as due soon.
const DueSoonDays = 3

// Fine amounts are stored as numeric(8, 2).
const FineAmountPlaces = 2

var MaxFineAmount = decimal.RequireFromString("999999.99")

// ValidFineAmount reports whether amount fits the fines.amount column.
func ValidFineAmount(amount decimal.Decimal) bool {
	return !amount.IsNegative() && amount.LessThanOrEqual(MaxFineAmount)
}

type Loan struct {
	ID               int64      `json:"id" db:"id"`
	ReaderID         int64      `json:"readerId" db:"reader_id"`
	CopyID           int64      `json:"copyId" db:"copy_id"`
	LibrarianID      *int64     `json:"librarianId" db:"librarian_id"`
	LoanDate         Date       `json:"loanDate" db:"loan_date"`
	ReturnDate       Date       `json:"returnDate" db:"return_date"`
	ActualReturnDate *Date      `json:"actualReturnDate" db:"actual_return_date"`
	Returned         bool       `json:"returned" db:"returned"`
	Status           LoanStatus `json:"status" db:"-"`
}

// StatusAt derives the loan state for the given day. Only returned and the dates are stored.
func (l Loan) StatusAt(today Date) LoanStatus {
	switch {
	case l.Returned:
		return StatusReturned
	case l.ReturnDate.Before(today):
		return StatusOverdue
	case l.ReturnDate.DaysSince(today) <= DueSoonDays:
		return StatusDueSoon
	default:
		return StatusActive
	}
}

// OverdueDays is zero for returned loans and loans not past their due date.
func (l Loan) OverdueDays(today Date) int {
	if l.Returned || !l.ReturnDate.Before(today) {
		return 0
	}
	return today.DaysSince(l.ReturnDate)
}

func (l Loan) WithStatus(today Date) Loan {
	l.Status = l.StatusAt(today)
	return l
}

type IssueLoanRequest struct {
	ReaderID    int64 `json:"readerId" validate:"required,gt=0"`
	CopyID      int64 `json:"copyId" validate:"required,gt=0"`
	LibrarianID int64 `json:"-"`
	// LoanDate defaults to today.
	LoanDate *Date `json:"loanDate"`
	// TermDays defaults to DefaultTermDays.
	TermDays int `json:"termDays" validate:"omitempty,gt=0"`
}

type ReturnLoanRequest struct {
	// ActualReturnDate defaults to today.
	ActualReturnDate *Date `json:"actualReturnDate"`
}

type ExtendLoanRequest struct {
	ExtraDays int `json:"extraDays" validate:"required,gt=0"`
}

type LoanFilter struct {
	ReaderID   int64
	CopyID     int64
	BookID     int64
	ActiveOnly bool
}

type Fine struct {
	ID          int64           `json:"id" db:"id"`
	LoanID      int64           `json:"loanId" db:"loan_id"`
	LibrarianID *int64          `json:"librarianId" db:"librarian_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	IssuedDate  Date            `json:"issuedDate" db:"issued_date"`
	Paid        bool            `json:"paid" db:"paid"`
}

type CreateFineRequest struct {
	LoanID      int64           `json:"loanId" validate:"required,gt=0"`
	LibrarianID int64           `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	// IssuedDate defaults to today.
	IssuedDate *Date `json:"issuedDate"`
}

type AutoFinesRequest struct {
	// DailyRate defaults to the configured rate.
	DailyRate *decimal.Decimal `json:"dailyRate"`
}

type FineFilter struct {
	ReaderID   int64
	LoanID     int64
	UnpaidOnly bool
}

type OverdueAmount struct {
	LoanID      int64           `json:"loanId"`
	OverdueDays int             `json:"overdueDays"`
	DailyRate   decimal.Decimal `json:"dailyRate"`
	Amount      decimal.Decimal `json:"amount"`
}

type LoanStats struct {
	Total    int `json:"total" db:"total"`
	Active   int `json:"active" db:"active"`
	Returned int `json:"returned" db:"returned"`
	Overdue  int `json:"overdue" db:"overdue"`
}

type FineStats struct {
	Total        int             `json:"total" db:"total"`
	Paid         int             `json:"paid" db:"paid"`
	Unpaid       int             `json:"unpaid" db:"unpaid"`
	TotalAmount  decimal.Decimal `json:"totalAmount" db:"total_amount"`
	UnpaidAmount decimal.Decimal `json:"unpaidAmount" db:"unpaid_amount"`
}
