package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/library/internal/service"
)

func TestService_OverdueScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, date(2024, time.January, 20))
	reader := f.reader(t, "ann@example.com")
	c := f.copy(t, "INV-1")

	loan := f.issue(t, reader.ID, c.ID, date(2024, time.January, 1))
	require.Equal(t, date(2024, time.January, 15), loan.ReturnDate)
	require.Equal(t, model.StatusOverdue, loan.Status)
	require.Equal(t, f.librarian.ID, *loan.LibrarianID)

	amount, err := f.svc.OverdueAmount(ctx, loan.ID, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.Equal(t, 5, amount.OverdueDays)
	require.True(t, decimal.NewFromInt(50).Equal(amount.Amount))

	overdue, err := f.svc.ListOverdue(ctx)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	require.Equal(t, loan.ID, overdue[0].ID)

	fines, err := f.svc.AutoCreateOverdueFines(ctx, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.Len(t, fines, 1)
	require.True(t, decimal.NewFromInt(50).Equal(fines[0].Amount))
	require.False(t, fines[0].Paid)
	require.Equal(t, loan.ID, fines[0].LoanID)

	again, err := f.svc.AutoCreateOverdueFines(ctx, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.Empty(t, again)

	extended, err := f.svc.ExtendLoan(ctx, loan.ID, 10)
	require.NoError(t, err)
	require.Equal(t, date(2024, time.January, 25), extended.ReturnDate)
	require.Equal(t, model.StatusActive, extended.Status)

	fine, err := f.svc.GetFine(ctx, fines[0].ID)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(50).Equal(fine.Amount))

	require.Equal(t, []model.EventType{
		model.EventLoanIssued,
		model.EventFineCreated,
		model.EventLoanExtended,
	}, f.pub.types())
}

func TestService_ListOverdue_OrderedByReturnDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, date(2024, time.February, 1))
	ann := f.reader(t, "ann@example.com")
	bob := f.reader(t, "bob@example.com")

	issue := func(readerID int64, inv string, loanDate model.Date, term int) model.Loan {
		t.Helper()
		loan, err := f.svc.IssueLoan(ctx, model.IssueLoanRequest{
			ReaderID:    readerID,
			CopyID:      f.copy(t, inv).ID,
			LibrarianID: f.librarian.ID,
			LoanDate:    &loanDate,
			TermDays:    term,
		})
		require.NoError(t, err)
		return loan
	}
	late := issue(ann.ID, "INV-1", date(2024, time.January, 10), 14)
	earliest := issue(ann.ID, "INV-2", date(2024, time.January, 2), 7)
	middle := issue(ann.ID, "INV-3", date(2024, time.January, 5), 10)
	issue(bob.ID, "INV-4", date(2024, time.January, 30), 14)

	overdue, err := f.svc.ListOverdue(ctx)
	require.NoError(t, err)
	ids := make([]int64, 0, len(overdue))
	for _, l := range overdue {
		require.Equal(t, model.StatusOverdue, l.Status)
		ids = append(ids, l.ID)
	}
	require.Equal(t, []int64{earliest.ID, middle.ID, late.ID}, ids)
}

func TestService_AutoCreateOverdueFines_AmountFrozen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, date(2024, time.January, 20))
	loan := f.issue(t, f.reader(t, "ann@example.com").ID, f.copy(t, "INV-1").ID, date(2024, time.January, 1))

	fines, err := f.svc.AutoCreateOverdueFines(ctx, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.Len(t, fines, 1)
	require.True(t, decimal.NewFromInt(50).Equal(fines[0].Amount))

	later := service.NewService(f.db, zap.NewExample(), service.WithClock(fixedClock(date(2024, time.January, 30))))
	amount, err := later.OverdueAmount(ctx, loan.ID, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(150).Equal(amount.Amount))

	again, err := later.AutoCreateOverdueFines(ctx, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.Empty(t, again)

	stored, err := later.ListFines(ctx, model.FineFilter{LoanID: loan.ID})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, fines[0].ID, stored[0].ID)
	require.True(t, decimal.NewFromInt(50).Equal(stored[0].Amount))
	require.Equal(t, date(2024, time.January, 20), stored[0].IssuedDate)
}

func TestService_IssueLoan_ActiveLoanLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	today := date(2024, time.March, 1)
	f := newFixture(t, today)
	reader := f.reader(t, "ann@example.com")

	for _, inv := range []string{"INV-1", "INV-2", "INV-3"} {
		f.issue(t, reader.ID, f.copy(t, inv).ID, today)
	}
	fourth := f.copy(t, "INV-4")
	_, err := f.svc.IssueLoan(ctx, model.IssueLoanRequest{ReaderID: reader.ID, CopyID: fourth.ID, LibrarianID: f.librarian.ID})
	require.ErrorIs(t, err, errs.ErrLoanLimit)
	require.ErrorIs(t, err, errs.ErrRuleViolation)

	got, err := f.svc.GetCopy(ctx, fourth.ID)
	require.NoError(t, err)
	require.True(t, got.Available)

	stats, err := f.svc.LoanStats(ctx, reader.ID)
	require.NoError(t, err)
	require.Equal(t, model.LoanStats{Total: 3, Active: 3}, stats)
}

func TestService_IssueLoan_Errors(t *testing.T) {
	t.Parallel()
	today := date(2024, time.March, 1)

	tests := []struct {
		name    string
		req     func(f fixture, reader model.Reader, c model.BookCopy) model.IssueLoanRequest
		wantErr error
		kind    error
	}{
		{
			name: "unknown reader",
			req: func(f fixture, _ model.Reader, c model.BookCopy) model.IssueLoanRequest {
				return model.IssueLoanRequest{ReaderID: 100, CopyID: c.ID, LibrarianID: f.librarian.ID}
			},
			wantErr: errs.ErrReaderNotFound,
			kind:    errs.ErrNotFound,
		},
		{
			name: "unknown copy",
			req: func(f fixture, r model.Reader, _ model.BookCopy) model.IssueLoanRequest {
				return model.IssueLoanRequest{ReaderID: r.ID, CopyID: 100, LibrarianID: f.librarian.ID}
			},
			wantErr: errs.ErrCopyNotFound,
			kind:    errs.ErrNotFound,
		},
		{
			name: "unknown librarian",
			req: func(_ fixture, r model.Reader, c model.BookCopy) model.IssueLoanRequest {
				return model.IssueLoanRequest{ReaderID: r.ID, CopyID: c.ID, LibrarianID: 100}
			},
			wantErr: errs.ErrLibrarianNotFound,
			kind:    errs.ErrNotFound,
		},
		{
			name: "negative term",
			req: func(f fixture, r model.Reader, c model.BookCopy) model.IssueLoanRequest {
				return model.IssueLoanRequest{ReaderID: r.ID, CopyID: c.ID, LibrarianID: f.librarian.ID, TermDays: -1}
			},
			wantErr: errs.ErrInvalidTerm,
			kind:    errs.ErrRuleViolation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t, today)
			reader := f.reader(t, "ann@example.com")
			c := f.copy(t, "INV-1")

			_, err := f.svc.IssueLoan(context.Background(), tt.req(f, reader, c))
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, tt.kind)
			require.Empty(t, f.pub.types())
		})
	}
}

func TestService_IssueLoan_CopyOnLoan(t *testing.T) {
	t.Parallel()
	today := date(2024, time.March, 1)
	f := newFixture(t, today)
	c := f.copy(t, "INV-1")
	f.issue(t, f.reader(t, "ann@example.com").ID, c.ID, today)

	_, err := f.svc.IssueLoan(context.Background(), model.IssueLoanRequest{
		ReaderID:    f.reader(t, "bob@example.com").ID,
		CopyID:      c.ID,
		LibrarianID: f.librarian.ID,
	})
	require.ErrorIs(t, err, errs.ErrCopyUnavailable)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestService_IssueLoan_Concurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	today := date(2024, time.March, 1)

	t.Run("one copy many readers", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, today)
		c := f.copy(t, "INV-1")
		readers := make([]model.Reader, 5)
		for i := range readers {
			readers[i] = f.reader(t, string(rune('a'+i))+"@example.com")
		}

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			success  int
			conflict int
		)
		for _, r := range readers {
			wg.Add(1)
			go func(readerID int64) {
				defer wg.Done()
				_, err := f.svc.IssueLoan(ctx, model.IssueLoanRequest{ReaderID: readerID, CopyID: c.ID, LibrarianID: f.librarian.ID})
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					success++
				} else if errors.Is(err, errs.ErrCopyUnavailable) {
					conflict++
				}
			}(r.ID)
		}
		wg.Wait()
		require.Equal(t, 1, success)
		require.Equal(t, 4, conflict)
	})

	t.Run("one reader many copies", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, today)
		reader := f.reader(t, "ann@example.com")
		copies := make([]model.BookCopy, 6)
		for i := range copies {
			copies[i] = f.copy(t, "INV-"+string(rune('a'+i)))
		}

		var wg sync.WaitGroup
		for _, c := range copies {
			wg.Add(1)
			go func(copyID int64) {
				defer wg.Done()
				_, _ = f.svc.IssueLoan(ctx, model.IssueLoanRequest{ReaderID: reader.ID, CopyID: copyID, LibrarianID: f.librarian.ID})
			}(c.ID)
		}
		wg.Wait()

		active, err := f.svc.ListReaderLoans(ctx, reader.ID, true)
		require.NoError(t, err)
		require.Len(t, active, 3)
	})
}

func TestService_ReturnLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	today := date(2024, time.March, 10)
	f := newFixture(t, today)
	c := f.copy(t, "INV-1")
	loan := f.issue(t, f.reader(t, "ann@example.com").ID, c.ID, date(2024, time.March, 1))

	before := date(2024, time.February, 1)
	_, err := f.svc.ReturnLoan(ctx, loan.ID, model.ReturnLoanRequest{ActualReturnDate: &before})
	require.ErrorIs(t, err, errs.ErrReturnBeforeLoan)

	returned, err := f.svc.ReturnLoan(ctx, loan.ID, model.ReturnLoanRequest{})
	require.NoError(t, err)
	require.True(t, returned.Returned)
	require.Equal(t, model.StatusReturned, returned.Status)
	require.Equal(t, today, *returned.ActualReturnDate)
	require.False(t, returned.ActualReturnDate.Before(returned.LoanDate))

	got, err := f.svc.GetCopy(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, got.Available)

	_, err = f.svc.ReturnLoan(ctx, loan.ID, model.ReturnLoanRequest{})
	require.ErrorIs(t, err, errs.ErrLoanReturned)
	require.ErrorIs(t, err, errs.ErrRuleViolation)

	_, err = f.svc.ReturnLoan(ctx, 100, model.ReturnLoanRequest{})
	require.ErrorIs(t, err, errs.ErrLoanNotFound)

	_, err = f.svc.ActiveLoanByCopy(ctx, c.ID)
	require.ErrorIs(t, err, errs.ErrLoanNotFound)
}

func TestService_ExtendLoan(t *testing.T) {
	t.Parallel()
	loanDate := date(2024, time.January, 1)

	tests := []struct {
		name       string
		today      model.Date
		extraDays  int
		returned   bool
		wantReturn model.Date
		wantErr    error
	}{
		{name: "up to sixty days", today: date(2024, time.January, 2), extraDays: 46, wantReturn: date(2024, time.March, 1)},
		{name: "longer than sixty days", today: date(2024, time.January, 2), extraDays: 47, wantErr: errs.ErrLoanTooLong},
		{name: "overdue exactly thirty days", today: date(2024, time.February, 14), extraDays: 1, wantReturn: date(2024, time.January, 16)},
		{name: "overdue thirty one days", today: date(2024, time.February, 15), extraDays: 1, wantErr: errs.ErrOverdueTooLong},
		{name: "returned", today: date(2024, time.January, 2), extraDays: 1, returned: true, wantErr: errs.ErrLoanReturned},
		{name: "zero days", today: date(2024, time.January, 2), extraDays: 0, wantErr: errs.ErrInvalidTerm},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			f := newFixture(t, tt.today)
			loan := f.issue(t, f.reader(t, "ann@example.com").ID, f.copy(t, "INV-1").ID, loanDate)
			if tt.returned {
				_, err := f.svc.ReturnLoan(ctx, loan.ID, model.ReturnLoanRequest{})
				require.NoError(t, err)
			}

			got, err := f.svc.ExtendLoan(ctx, loan.ID, tt.extraDays)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, errs.ErrRuleViolation)
				stored, err := f.svc.GetLoan(ctx, loan.ID)
				require.NoError(t, err)
				require.Equal(t, loan.ReturnDate, stored.ReturnDate)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantReturn, got.ReturnDate)
		})
	}
}

func TestService_DeleteWithActiveLoans(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	today := date(2024, time.March, 1)
	f := newFixture(t, today)
	reader := f.reader(t, "ann@example.com")
	c := f.copy(t, "INV-1")
	loan := f.issue(t, reader.ID, c.ID, today)

	require.ErrorIs(t, f.svc.DeleteReader(ctx, reader.ID), errs.ErrHasActiveLoans)
	require.ErrorIs(t, f.svc.DeleteCopy(ctx, c.ID), errs.ErrHasActiveLoans)
	require.ErrorIs(t, f.svc.DeleteBook(ctx, c.BookID), errs.ErrConflict)

	_, err := f.svc.ReturnLoan(ctx, loan.ID, model.ReturnLoanRequest{})
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteCopy(ctx, c.ID))
	require.NoError(t, f.svc.DeleteReader(ctx, reader.ID))

	_, err = f.svc.GetLoan(ctx, loan.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}
