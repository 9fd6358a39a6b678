package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
)

type ReaderRepository interface {
	CreateReader(ctx context.Context, req model.CreateReaderRequest, registered model.Date) (model.Reader, error)
	GetReader(ctx context.Context, id int64) (model.Reader, error)
	LockReader(ctx context.Context, id int64) (model.Reader, error)
	ListReaders(ctx context.Context, f model.ReaderFilter) (model.ListReaders, error)
	UpdateReader(ctx context.Context, id int64, req model.UpdateReaderRequest) (model.Reader, error)
	DeleteReader(ctx context.Context, id int64) error
}

type GenreRepository interface {
	CreateGenre(ctx context.Context, name string) (model.Genre, error)
	GetGenre(ctx context.Context, id int64) (model.Genre, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)
	RenameGenre(ctx context.Context, id int64, name string) (model.Genre, error)
	DeleteGenre(ctx context.Context, id int64) error
}

type BookRepository interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error)
	UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	SetBookGenres(ctx context.Context, bookID int64, genreIDs []int64) error
}

type CopyRepository interface {
	CreateCopy(ctx context.Context, req model.CreateCopyRequest) (model.BookCopy, error)
	GetCopy(ctx context.Context, id int64) (model.BookCopy, error)
	LockCopy(ctx context.Context, id int64) (model.BookCopy, error)
	ListCopies(ctx context.Context, bookID int64, availableOnly bool) ([]model.BookCopy, error)
	UpdateCopy(ctx context.Context, id int64, req model.UpdateCopyRequest) (model.BookCopy, error)
	SetCopyAvailable(ctx context.Context, id int64, available bool) error
	DeleteCopy(ctx context.Context, id int64) error
	SearchCopies(ctx context.Context, f model.CopyFilter) ([]model.BookCopy, error)
	// CopyStats counts all copies when bookID is zero.
	CopyStats(ctx context.Context, bookID int64) (model.CopyStats, error)
}

type LibrarianRepository interface {
	CreateLibrarian(ctx context.Context, l model.Librarian) (model.Librarian, error)
	GetLibrarian(ctx context.Context, id int64) (model.Librarian, error)
	GetLibrarianByEmail(ctx context.Context, email string) (model.Librarian, error)
	FirstLibrarian(ctx context.Context) (model.Librarian, error)
	UpdateLibrarianPassword(ctx context.Context, id int64, hash string) error
}

type LoanRepository interface {
	CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	GetLoan(ctx context.Context, id int64) (model.Loan, error)
	LockLoan(ctx context.Context, id int64) (model.Loan, error)
	ListLoans(ctx context.Context, f model.LoanFilter) ([]model.Loan, error)
	CountActiveLoans(ctx context.Context, f model.LoanFilter) (int, error)
	ListOverdueLoans(ctx context.Context, today model.Date) ([]model.Loan, error)
	MarkLoanReturned(ctx context.Context, id int64, actual model.Date) (model.Loan, error)
	SetLoanReturnDate(ctx context.Context, id int64, returnDate model.Date) (model.Loan, error)
	LoanStats(ctx context.Context, readerID int64, today model.Date) (model.LoanStats, error)
}

type FineRepository interface {
	CreateFine(ctx context.Context, fine model.Fine) (model.Fine, error)
	GetFine(ctx context.Context, id int64) (model.Fine, error)
	LockFine(ctx context.Context, id int64) (model.Fine, error)
	GetFineByLoan(ctx context.Context, loanID int64) (model.Fine, error)
	ListFines(ctx context.Context, f model.FineFilter) ([]model.Fine, error)
	MarkFinePaid(ctx context.Context, id int64) (model.Fine, error)
	FineStats(ctx context.Context, readerID int64) (model.FineStats, error)
}

type Repository interface {
	ReaderRepository
	GenreRepository
	BookRepository
	CopyRepository
	LibrarianRepository
	LoanRepository
	FineRepository

	// RunInTx runs fn inside one transaction. Nested calls join the outer transaction.
	RunInTx(ctx context.Context, fn func(tx Repository) error) error
}

type repository struct {
	db  *sqlx.DB
	q   sqlx.ExtContext
	tx  *sqlx.Tx
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		q:   db,
		log: log.Named("repo"),
	}, nil
}

var _ Repository = (*repository)(nil)

const (
	readersTableName     = `readers`
	librariansTableName  = `librarians`
	genresTableName      = `genres`
	booksTableName       = `books`
	genresBooksTableName = `genres_books`
	copiesTableName      = `book_copies`
	loansTableName       = `loans`
	finesTableName       = `fines`

	activeCopyLoanIndex = `loans_active_copy_uidx`
	fineLoanUnique      = `fines_loan_id_key`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) RunInTx(ctx context.Context, fn func(tx Repository) error) (err error) {
	if r.tx != nil {
		return fn(r)
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.log.Error("tx.Rollback", zap.Error(rbErr))
			}
			return
		}
		err = errors.Wrap(tx.Commit(), "commit tx")
	}()

	return fn(&repository{db: r.db, q: tx, tx: tx, log: r.log})
}

func (r *repository) get(ctx context.Context, dest any, b sq.Sqlizer, notFound error) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	if err = sqlx.GetContext(ctx, r.q, dest, query, args...); err != nil {
		r.log.Debug("get", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return mapErr(err, notFound)
	}
	return nil
}

func (r *repository) selectAll(ctx context.Context, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	if err = sqlx.SelectContext(ctx, r.q, dest, query, args...); err != nil {
		r.log.Debug("select", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return mapErr(err, errs.ErrNotFound)
	}
	return nil
}

// exec fails with notFound when no row was affected.
func (r *repository) exec(ctx context.Context, b sq.Sqlizer, notFound error) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return mapErr(err, notFound)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func mapErr(err error, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			switch pgErr.ConstraintName {
			case activeCopyLoanIndex:
				return errs.ErrCopyUnavailable
			case fineLoanUnique:
				return errs.ErrFineExists
			}
			return errors.Wrap(errs.ErrDuplicate, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return errors.Wrap(errs.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return errors.WithStack(err)
}

func paginate(b sq.SelectBuilder, page, size int) sq.SelectBuilder {
	if page > 0 && size > 0 {
		b = b.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	return b
}
