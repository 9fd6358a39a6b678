package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/library/internal/repository/stubs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/service"
	"github.com/sociopath-little-dragon/library-bd/pkg/auth"
)

type recorder struct {
	mu     sync.Mutex
	events []model.Event
}

func (r *recorder) Enqueue(_, _ string, v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, v.(model.Event))
	return nil
}

func (r *recorder) types() []model.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]model.EventType, 0, len(r.events))
	for _, e := range r.events {
		res = append(res, e.Type)
	}
	return res
}

type tokenIssuer struct{}

func (tokenIssuer) Issue(p auth.Profile) (string, error) {
	return "token-" + p.Email, nil
}

func fixedClock(d model.Date) func() time.Time {
	return func() time.Time {
		return d.Time.Add(12 * time.Hour)
	}
}

type fixture struct {
	svc       *service.Service
	db        *stubs.MockDB
	pub       *recorder
	librarian model.Librarian
}

func newFixture(t *testing.T, today model.Date) fixture {
	t.Helper()
	db := stubs.NewMockDB()
	pub := &recorder{}
	lib, err := db.CreateLibrarian(context.Background(), model.Librarian{
		Name:  "Lib",
		Email: "lib@example.com",
	})
	require.NoError(t, err)
	svc := service.NewService(db, zap.NewExample(),
		service.WithClock(fixedClock(today)),
		service.WithPublisher(pub),
		service.WithTokenIssuer(tokenIssuer{}),
	)
	return fixture{svc: svc, db: db, pub: pub, librarian: lib}
}

func (f fixture) reader(t *testing.T, email string) model.Reader {
	t.Helper()
	r, err := f.svc.CreateReader(context.Background(), model.CreateReaderRequest{Name: email, Email: email})
	require.NoError(t, err)
	return r
}

func (f fixture) copy(t *testing.T, inv string) model.BookCopy {
	t.Helper()
	ctx := context.Background()
	book, err := f.svc.CreateBook(ctx, model.CreateBookRequest{Title: "Book " + inv})
	require.NoError(t, err)
	c, err := f.svc.CreateCopy(ctx, model.CreateCopyRequest{BookID: book.ID, InventoryNumber: inv})
	require.NoError(t, err)
	return c
}

func (f fixture) issue(t *testing.T, readerID, copyID int64, loanDate model.Date) model.Loan {
	t.Helper()
	loan, err := f.svc.IssueLoan(context.Background(), model.IssueLoanRequest{
		ReaderID:    readerID,
		CopyID:      copyID,
		LibrarianID: f.librarian.ID,
		LoanDate:    &loanDate,
	})
	require.NoError(t, err)
	return loan
}

func date(y int, m time.Month, d int) model.Date {
	return model.NewDate(y, m, d)
}
