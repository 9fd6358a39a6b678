package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/library/internal/repository/stubs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/service"
)

func TestComputeOverdueAmount(t *testing.T) {
	t.Parallel()
	today := date(2024, time.January, 20)
	actual := date(2024, time.January, 18)

	tests := []struct {
		name string
		loan model.Loan
		rate decimal.Decimal
		want decimal.Decimal
	}{
		{
			name: "not due yet",
			loan: model.Loan{ReturnDate: date(2024, time.January, 25)},
			rate: decimal.NewFromInt(10),
			want: decimal.Zero,
		},
		{
			name: "due today",
			loan: model.Loan{ReturnDate: today},
			rate: decimal.NewFromInt(10),
			want: decimal.Zero,
		},
		{
			name: "returned late",
			loan: model.Loan{ReturnDate: date(2024, time.January, 15), Returned: true, ActualReturnDate: &actual},
			rate: decimal.NewFromInt(10),
			want: decimal.Zero,
		},
		{
			name: "five days overdue",
			loan: model.Loan{ReturnDate: date(2024, time.January, 15)},
			rate: decimal.NewFromInt(10),
			want: decimal.NewFromInt(50),
		},
		{
			name: "fractional rate",
			loan: model.Loan{ReturnDate: date(2024, time.January, 17)},
			rate: decimal.RequireFromString("0.5"),
			want: decimal.RequireFromString("1.5"),
		},
		{
			name: "rounded to cents",
			loan: model.Loan{ReturnDate: date(2024, time.January, 17)},
			rate: decimal.RequireFromString("0.333"),
			want: decimal.RequireFromString("1"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := service.ComputeOverdueAmount(tt.loan, tt.rate, today)
			require.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestService_CreateFine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	today := date(2024, time.January, 20)
	f := newFixture(t, today)
	loan := f.issue(t, f.reader(t, "ann@example.com").ID, f.copy(t, "INV-1").ID, date(2024, time.January, 1))

	for _, amount := range []string{"-1", "1000000", "999999.996"} {
		_, err := f.svc.CreateFine(ctx, model.CreateFineRequest{LoanID: loan.ID, LibrarianID: f.librarian.ID, Amount: decimal.RequireFromString(amount)})
		require.ErrorIs(t, err, errs.ErrInvalidAmount, amount)
	}

	_, err := f.svc.CreateFine(ctx, model.CreateFineRequest{LoanID: loan.ID, LibrarianID: 100, Amount: decimal.NewFromInt(30)})
	require.ErrorIs(t, err, errs.ErrLibrarianNotFound)


	_, err = f.svc.CreateFine(ctx, model.CreateFineRequest{LoanID: 100, LibrarianID: f.librarian.ID, Amount: decimal.NewFromInt(30)})
	require.ErrorIs(t, err, errs.ErrLoanNotFound)

	first, err := f.svc.CreateFine(ctx, model.CreateFineRequest{LoanID: loan.ID, LibrarianID: f.librarian.ID, Amount: decimal.RequireFromString("29.999")})
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(30).Equal(first.Amount), first.Amount.String())
	require.Equal(t, today, first.IssuedDate)
	require.False(t, first.Paid)

	_, err = f.svc.CreateFine(ctx, model.CreateFineRequest{LoanID: loan.ID, LibrarianID: f.librarian.ID, Amount: decimal.NewFromInt(70)})
	require.ErrorIs(t, err, errs.ErrFineExists)
	require.ErrorIs(t, err, errs.ErrConflict)

	stored, err := f.svc.GetFineByLoan(ctx, loan.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, stored.ID)
	require.True(t, decimal.NewFromInt(30).Equal(stored.Amount))

	created, err := f.svc.AutoCreateOverdueFines(ctx, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.Empty(t, created)
}

func TestService_AutoCreateOverdueFines_Librarian(t *testing.T) {
	t.Parallel()
	today := date(2024, time.January, 20)
	loanDate := date(2024, time.January, 1)

	seedLoan := func(t *testing.T, db *stubs.MockDB) model.Loan {
		t.Helper()
		ctx := context.Background()
		r, err := db.CreateReader(ctx, model.CreateReaderRequest{Name: "Ann", Email: "ann@example.com"}, loanDate)
		require.NoError(t, err)
		b, err := db.CreateBook(ctx, model.CreateBookRequest{Title: "Dune"})
		require.NoError(t, err)
		c, err := db.CreateCopy(ctx, model.CreateCopyRequest{BookID: b.ID, InventoryNumber: "INV-1"})
		require.NoError(t, err)
		loan, err := db.CreateLoan(ctx, model.Loan{ReaderID: r.ID, CopyID: c.ID, LoanDate: loanDate, ReturnDate: loanDate.AddDays(14)})
		require.NoError(t, err)
		require.NoError(t, db.SetCopyAvailable(ctx, c.ID, false))
		return loan
	}

	t.Run("falls back to the first librarian", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		db := stubs.NewMockDB()
		first, err := db.CreateLibrarian(ctx, model.Librarian{Name: "First", Email: "first@example.com"})
		require.NoError(t, err)
		_, err = db.CreateLibrarian(ctx, model.Librarian{Name: "Second", Email: "second@example.com"})
		require.NoError(t, err)
		seedLoan(t, db)
		svc := service.NewService(db, zap.NewExample(), service.WithClock(fixedClock(today)))

		fines, err := svc.AutoCreateOverdueFines(ctx, decimal.NewFromInt(10))
		require.NoError(t, err)
		require.Len(t, fines, 1)
		require.Equal(t, first.ID, *fines[0].LibrarianID)
	})

	t.Run("skips loans when there is no librarian", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		db := stubs.NewMockDB()
		loan := seedLoan(t, db)
		svc := service.NewService(db, zap.NewExample(), service.WithClock(fixedClock(today)))

		fines, err := svc.AutoCreateOverdueFines(ctx, decimal.NewFromInt(10))
		require.NoError(t, err)
		require.Empty(t, fines)
		_, err = svc.GetFineByLoan(ctx, loan.ID)
		require.ErrorIs(t, err, errs.ErrFineNotFound)
	})

	t.Run("skips amounts above the maximum", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		db := stubs.NewMockDB()
		_, err := db.CreateLibrarian(ctx, model.Librarian{Name: "First", Email: "first@example.com"})
		require.NoError(t, err)
		loan := seedLoan(t, db)
		svc := service.NewService(db, zap.NewExample(), service.WithClock(fixedClock(today)))

		fines, err := svc.AutoCreateOverdueFines(ctx, decimal.NewFromInt(300000))
		require.NoError(t, err)
		require.Empty(t, fines)
		_, err = svc.GetFineByLoan(ctx, loan.ID)
		require.ErrorIs(t, err, errs.ErrFineNotFound)
	})

	t.Run("zero rate creates nothing", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		db := stubs.NewMockDB()
		_, err := db.CreateLibrarian(ctx, model.Librarian{Name: "First", Email: "first@example.com"})
		require.NoError(t, err)
		seedLoan(t, db)
		svc := service.NewService(db, zap.NewExample(), service.WithClock(fixedClock(today)))

		fines, err := svc.AutoCreateOverdueFines(ctx, decimal.Zero)
		require.NoError(t, err)
		require.Empty(t, fines)
	})
}

func TestService_PayFine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, date(2024, time.January, 20))
	reader := f.reader(t, "ann@example.com")
	f.issue(t, reader.ID, f.copy(t, "INV-1").ID, date(2024, time.January, 1))

	fines, err := f.svc.AutoCreateOverdueFines(ctx, f.svc.DailyRate())
	require.NoError(t, err)
	require.Len(t, fines, 1)

	paid, err := f.svc.PayFine(ctx, fines[0].ID)
	require.NoError(t, err)
	require.True(t, paid.Paid)

	_, err = f.svc.PayFine(ctx, fines[0].ID)
	require.ErrorIs(t, err, errs.ErrFinePaid)
	require.ErrorIs(t, err, errs.ErrRuleViolation)

	_, err = f.svc.PayFine(ctx, 100)
	require.ErrorIs(t, err, errs.ErrFineNotFound)

	unpaid, err := f.svc.ListReaderFines(ctx, reader.ID, true)
	require.NoError(t, err)
	require.Empty(t, unpaid)

	stats, err := f.svc.FineStats(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Total)
	require.Equal(t, 1, stats.Paid)
	require.True(t, decimal.NewFromInt(50).Equal(stats.TotalAmount))
	require.True(t, stats.UnpaidAmount.IsZero())

	require.Equal(t, []model.EventType{
		model.EventLoanIssued,
		model.EventFineCreated,
		model.EventFinePaid,
	}, f.pub.types())
}
