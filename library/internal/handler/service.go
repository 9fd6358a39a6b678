package handler

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ CatalogService = (*service.Service)(nil)
	_ LoanService    = (*service.Service)(nil)
	_ FineService    = (*service.Service)(nil)
	_ AuthService    = (*service.Service)(nil)
)

type CatalogService interface {
	CreateReader(ctx context.Context, req model.CreateReaderRequest) (model.Reader, error)
	GetReader(ctx context.Context, id int64) (model.Reader, error)
	ListReaders(ctx context.Context, f model.ReaderFilter) (model.ListReaders, error)
	UpdateReader(ctx context.Context, id int64, req model.UpdateReaderRequest) (model.Reader, error)
	DeleteReader(ctx context.Context, id int64) error

	CreateGenre(ctx context.Context, req model.GenreRequest) (model.Genre, error)
	GetGenre(ctx context.Context, id int64) (model.Genre, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)
	RenameGenre(ctx context.Context, id int64, req model.GenreRequest) (model.Genre, error)
	DeleteGenre(ctx context.Context, id int64) error

	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error)
	UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	SetBookGenres(ctx context.Context, bookID int64, genreIDs []int64) (model.Book, error)

	CreateCopy(ctx context.Context, req model.CreateCopyRequest) (model.BookCopy, error)
	GetCopy(ctx context.Context, id int64) (model.BookCopy, error)
	ListCopies(ctx context.Context, bookID int64, availableOnly bool) ([]model.BookCopy, error)
	UpdateCopy(ctx context.Context, id int64, req model.UpdateCopyRequest) (model.BookCopy, error)
	DeleteCopy(ctx context.Context, id int64) error
	WriteOffCopy(ctx context.Context, id int64) (model.BookCopy, error)
	SearchCopies(ctx context.Context, f model.CopyFilter) ([]model.BookCopy, error)
	CopyStats(ctx context.Context, bookID int64) (model.CopyStats, error)
}

type LoanService interface {
	IssueLoan(ctx context.Context, req model.IssueLoanRequest) (model.Loan, error)
	ReturnLoan(ctx context.Context, id int64, req model.ReturnLoanRequest) (model.Loan, error)
	ExtendLoan(ctx context.Context, id int64, extraDays int) (model.Loan, error)
	ListOverdue(ctx context.Context) ([]model.Loan, error)
	GetLoan(ctx context.Context, id int64) (model.Loan, error)
	ListLoans(ctx context.Context, f model.LoanFilter) ([]model.Loan, error)
	ListReaderLoans(ctx context.Context, readerID int64, activeOnly bool) ([]model.Loan, error)
	ActiveLoanByCopy(ctx context.Context, copyID int64) (model.Loan, error)
	LoanStats(ctx context.Context, readerID int64) (model.LoanStats, error)
}

type FineService interface {
	DailyRate() decimal.Decimal
	OverdueAmount(ctx context.Context, loanID int64, dailyRate decimal.Decimal) (model.OverdueAmount, error)
	CreateFine(ctx context.Context, req model.CreateFineRequest) (model.Fine, error)
	AutoCreateOverdueFines(ctx context.Context, dailyRate decimal.Decimal) ([]model.Fine, error)
	PayFine(ctx context.Context, id int64) (model.Fine, error)
	GetFine(ctx context.Context, id int64) (model.Fine, error)
	GetFineByLoan(ctx context.Context, loanID int64) (model.Fine, error)
	ListFines(ctx context.Context, f model.FineFilter) ([]model.Fine, error)
	ListReaderFines(ctx context.Context, readerID int64, unpaidOnly bool) ([]model.Fine, error)
	FineStats(ctx context.Context, readerID int64) (model.FineStats, error)
}

type AuthService interface {
	CreateLibrarian(ctx context.Context, req model.CreateLibrarianRequest) (model.Librarian, error)
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	ChangePassword(ctx context.Context, librarianID int64, req model.ChangePasswordRequest) error
}
