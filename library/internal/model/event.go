package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventLoanIssued   EventType = "loan.issued"
	EventLoanReturned EventType = "loan.returned"
	EventLoanExtended EventType = "loan.extended"
	EventFineCreated  EventType = "fine.created"
	EventFinePaid     EventType = "fine.paid"
)

// Event is published after a loan or fine change has been committed.
type Event struct {
	ID          uuid.UUID        `json:"id"`
	Type        EventType        `json:"type"`
	OccurredAt  time.Time        `json:"occurredAt"`
	LoanID      int64            `json:"loanId"`
	ReaderID    int64            `json:"readerId,omitempty"`
	CopyID      int64            `json:"copyId,omitempty"`
	LibrarianID *int64           `json:"librarianId,omitempty"`
	FineID      int64            `json:"fineId,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	ReturnDate  *Date            `json:"returnDate,omitempty"`
}

func NewLoanEvent(typ EventType, loan Loan, at time.Time) Event {
	rd := loan.ReturnDate
	return Event{
		ID:          uuid.New(),
		Type:        typ,
		OccurredAt:  at,
		LoanID:      loan.ID,
		ReaderID:    loan.ReaderID,
		CopyID:      loan.CopyID,
		LibrarianID: loan.LibrarianID,
		ReturnDate:  &rd,
	}
}

func NewFineEvent(typ EventType, fine Fine, at time.Time) Event {
	amount := fine.Amount
	return Event{
		ID:          uuid.New(),
		Type:        typ,
		OccurredAt:  at,
		LoanID:      fine.LoanID,
		LibrarianID: fine.LibrarianID,
		FineID:      fine.ID,
		Amount:      &amount,
	}
}
