package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/library/migrations"
	"github.com/sociopath-little-dragon/library-bd/pkg/postgres"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("library"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, postgres.MigrateUp(db, migrations.MigrationFiles))
	return db
}

func TestRepository_Postgres(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo, err := NewRepository(db, zap.NewExample())
	require.NoError(t, err)

	day := model.NewDate(2024, time.January, 1)
	reader, err := repo.CreateReader(ctx, model.CreateReaderRequest{Name: "Ann", Email: "ann@example.com"}, day)
	require.NoError(t, err)
	require.Equal(t, day, reader.RegistrationDate)

	_, err = repo.CreateReader(ctx, model.CreateReaderRequest{Name: "Ann", Email: "ann@example.com"}, day)
	require.ErrorIs(t, err, errs.ErrDuplicate)

	lib, err := repo.CreateLibrarian(ctx, model.Librarian{Name: "Bob", Email: "bob@example.com", PasswordHash: "x", HireDate: day})
	require.NoError(t, err)

	genre, err := repo.CreateGenre(ctx, "Sci-Fi")
	require.NoError(t, err)
	book, err := repo.CreateBook(ctx, model.CreateBookRequest{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)
	require.NoError(t, repo.SetBookGenres(ctx, book.ID, []int64{genre.ID}))
	c, err := repo.CreateCopy(ctx, model.CreateCopyRequest{BookID: book.ID, InventoryNumber: "INV-1"})
	require.NoError(t, err)
	require.Equal(t, model.ConditionGood, c.Condition)

	books, err := repo.ListBooks(ctx, model.BookFilter{Genre: "sci", AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, books.Items, 1)
	require.Equal(t, []model.Genre{genre}, books.Items[0].Genres)

	var loan model.Loan
	err = repo.RunInTx(ctx, func(tx Repository) error {
		if _, err := tx.LockCopy(ctx, c.ID); err != nil {
			return err
		}
		loan, err = tx.CreateLoan(ctx, model.Loan{
			ReaderID:    reader.ID,
			CopyID:      c.ID,
			LibrarianID: &lib.ID,
			LoanDate:    day,
			ReturnDate:  day.AddDays(14),
		})
		if err != nil {
			return err
		}
		return tx.SetCopyAvailable(ctx, c.ID, false)
	})
	require.NoError(t, err)
	require.Equal(t, model.NewDate(2024, time.January, 15), loan.ReturnDate)

	_, err = repo.CreateLoan(ctx, model.Loan{ReaderID: reader.ID, CopyID: c.ID, LoanDate: day, ReturnDate: day.AddDays(14)})
	require.ErrorIs(t, err, errs.ErrCopyUnavailable)

	count, err := repo.CountActiveLoans(ctx, model.LoanFilter{ReaderID: reader.ID})
	require.NoError(t, err)
	require.Equal(t, 1, count)

	today := model.NewDate(2024, time.January, 20)
	overdue, err := repo.ListOverdueLoans(ctx, today)
	require.NoError(t, err)
	require.Len(t, overdue, 1)

	fine, err := repo.CreateFine(ctx, model.Fine{LoanID: loan.ID, LibrarianID: &lib.ID, Amount: decimal.NewFromInt(50), IssuedDate: today})
	require.NoError(t, err)
	_, err = repo.CreateFine(ctx, model.Fine{LoanID: loan.ID, LibrarianID: &lib.ID, Amount: decimal.NewFromInt(70), IssuedDate: today})
	require.ErrorIs(t, err, errs.ErrFineExists)

	fineStats, err := repo.FineStats(ctx, reader.ID)
	require.NoError(t, err)
	require.Equal(t, 1, fineStats.Unpaid)
	require.True(t, decimal.NewFromInt(50).Equal(fineStats.UnpaidAmount))

	paid, err := repo.MarkFinePaid(ctx, fine.ID)
	require.NoError(t, err)
	require.True(t, paid.Paid)
	_, err = repo.MarkFinePaid(ctx, fine.ID)
	require.ErrorIs(t, err, errs.ErrFineNotFound)

	returned, err := repo.MarkLoanReturned(ctx, loan.ID, today)
	require.NoError(t, err)
	require.Equal(t, today, *returned.ActualReturnDate)

	stats, err := repo.LoanStats(ctx, 0, today)
	require.NoError(t, err)
	require.Equal(t, model.LoanStats{Total: 1, Returned: 1}, stats)
}

func TestRepository_ListOverdueLoansOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo, err := NewRepository(db, zap.NewExample())
	require.NoError(t, err)

	day := model.NewDate(2024, time.January, 1)
	reader, err := repo.CreateReader(ctx, model.CreateReaderRequest{Name: "Ann", Email: "ann@example.com"}, day)
	require.NoError(t, err)
	book, err := repo.CreateBook(ctx, model.CreateBookRequest{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	lend := func(inv string, loanDate model.Date, term int) model.Loan {
		t.Helper()
		c, err := repo.CreateCopy(ctx, model.CreateCopyRequest{BookID: book.ID, InventoryNumber: inv})
		require.NoError(t, err)
		loan, err := repo.CreateLoan(ctx, model.Loan{
			ReaderID:   reader.ID,
			CopyID:     c.ID,
			LoanDate:   loanDate,
			ReturnDate: loanDate.AddDays(term),
		})
		require.NoError(t, err)
		return loan
	}
	late := lend("INV-1", model.NewDate(2024, time.January, 10), 14)
	earliest := lend("INV-2", model.NewDate(2024, time.January, 2), 7)
	middle := lend("INV-3", model.NewDate(2024, time.January, 5), 10)
	lend("INV-4", model.NewDate(2024, time.January, 30), 14)
	returned := lend("INV-5", model.NewDate(2024, time.January, 1), 3)
	_, err = repo.MarkLoanReturned(ctx, returned.ID, model.NewDate(2024, time.January, 20))
	require.NoError(t, err)

	overdue, err := repo.ListOverdueLoans(ctx, model.NewDate(2024, time.February, 1))
	require.NoError(t, err)
	ids := make([]int64, 0, len(overdue))
	for _, l := range overdue {
		ids = append(ids, l.ID)
	}
	require.Equal(t, []int64{earliest.ID, middle.ID, late.ID}, ids)
}

func TestRepository_CopySearchAndStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo, err := NewRepository(db, zap.NewExample())
	require.NoError(t, err)

	dune, err := repo.CreateBook(ctx, model.CreateBookRequest{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)
	hamlet, err := repo.CreateBook(ctx, model.CreateBookRequest{Title: "Hamlet", Author: "Shakespeare"})
	require.NoError(t, err)
	for _, req := range []model.CreateCopyRequest{
		{BookID: dune.ID, InventoryNumber: "DUNE-1", Location: "Hall A"},
		{BookID: dune.ID, InventoryNumber: "DUNE-2", Condition: model.ConditionBad, Location: "Hall B"},
		{BookID: hamlet.ID, InventoryNumber: "HAM-1", Location: "hall a"},
	} {
		_, err = repo.CreateCopy(ctx, req)
		require.NoError(t, err)
	}

	found, err := repo.SearchCopies(ctx, model.CopyFilter{InventoryNumber: "dune", Condition: model.ConditionBad})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "DUNE-2", found[0].InventoryNumber)
	require.NoError(t, repo.SetCopyAvailable(ctx, found[0].ID, false))

	found, err = repo.SearchCopies(ctx, model.CopyFilter{Location: "HALL A"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.Equal(t, "DUNE-1", found[0].InventoryNumber)
	require.Equal(t, "HAM-1", found[1].InventoryNumber)

	stats, err := repo.CopyStats(ctx, dune.ID)
	require.NoError(t, err)
	require.Equal(t, model.CopyStats{
		Total:       2,
		Available:   1,
		Unavailable: 1,
		ByCondition: map[model.Condition]int{
			model.ConditionExcellent: 0,
			model.ConditionGood:      1,
			model.ConditionBad:       1,
		},
	}, stats)

	all, err := repo.CopyStats(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, 3, all.Total)
	require.Equal(t, 2, all.ByCondition[model.ConditionGood])
}
