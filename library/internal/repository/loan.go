package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
)

var loanColumns = []string{"id", "reader_id", "copy_id", "librarian_id", "loan_date", "return_date", "actual_return_date", "returned"}

func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	b := qb.Insert(loansTableName).
		Columns("reader_id", "copy_id", "librarian_id", "loan_date", "return_date", "returned").
		Values(loan.ReaderID, loan.CopyID, loan.LibrarianID, loan.LoanDate, loan.ReturnDate, false).
		Suffix("returning " + strings.Join(loanColumns, ", "))
	var res model.Loan
	if err := r.get(ctx, &res, b, errs.ErrLoanNotFound); err != nil {
		return model.Loan{}, err
	}
	return res, nil
}

func (r *repository) GetLoan(ctx context.Context, id int64) (model.Loan, error) {
	return r.getLoan(ctx, id, false)
}

func (r *repository) LockLoan(ctx context.Context, id int64) (model.Loan, error) {
	return r.getLoan(ctx, id, true)
}

func (r *repository) getLoan(ctx context.Context, id int64, lock bool) (model.Loan, error) {
	b := qb.Select(loanColumns...).From(loansTableName).Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("for update")
	}
	var loan model.Loan
	if err := r.get(ctx, &loan, b, errs.ErrLoanNotFound); err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

func loanFilter(b sq.SelectBuilder, f model.LoanFilter) sq.SelectBuilder {
	if f.ReaderID != 0 {
		b = b.Where(sq.Eq{"reader_id": f.ReaderID})
	}
	if f.CopyID != 0 {
		b = b.Where(sq.Eq{"copy_id": f.CopyID})
	}
	if f.BookID != 0 {
		b = b.Where(sq.Expr(fmt.Sprintf("copy_id in (select id from %s where book_id = ?)", copiesTableName), f.BookID))
	}
	if f.ActiveOnly {
		b = b.Where(sq.Eq{"returned": false})
	}
	return b
}

func (r *repository) ListLoans(ctx context.Context, f model.LoanFilter) ([]model.Loan, error) {
	b := loanFilter(qb.Select(loanColumns...).From(loansTableName), f).
		OrderBy("loan_date desc", "id desc")
	loans := make([]model.Loan, 0)
	if err := r.selectAll(ctx, &loans, b); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) CountActiveLoans(ctx context.Context, f model.LoanFilter) (int, error) {
	f.ActiveOnly = true
	b := loanFilter(qb.Select("count(*)").From(loansTableName), f)
	var count int
	if err := r.get(ctx, &count, b, errs.ErrLoanNotFound); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ListOverdueLoans(ctx context.Context, today model.Date) ([]model.Loan, error) {
	b := qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"returned": false}).
		Where(sq.Lt{"return_date": today}).
		OrderBy("return_date", "id")
	loans := make([]model.Loan, 0)
	if err := r.selectAll(ctx, &loans, b); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) MarkLoanReturned(ctx context.Context, id int64, actual model.Date) (model.Loan, error) {
	b := qb.Update(loansTableName).
		Set("returned", true).
		Set("actual_return_date", actual).
		Where(sq.Eq{"id": id, "returned": false}).
		Suffix("returning " + strings.Join(loanColumns, ", "))
	var loan model.Loan
	if err := r.get(ctx, &loan, b, errs.ErrLoanNotFound); err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) SetLoanReturnDate(ctx context.Context, id int64, returnDate model.Date) (model.Loan, error) {
	b := qb.Update(loansTableName).
		Set("return_date", returnDate).
		Where(sq.Eq{"id": id, "returned": false}).
		Suffix("returning " + strings.Join(loanColumns, ", "))
	var loan model.Loan
	if err := r.get(ctx, &loan, b, errs.ErrLoanNotFound); err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) LoanStats(ctx context.Context, readerID int64, today model.Date) (model.LoanStats, error) {
	b := qb.Select(
		"count(*) as total",
		"count(*) filter (where not returned) as active",
		"count(*) filter (where returned) as returned",
	).
		Column(sq.Expr("count(*) filter (where not returned and return_date < ?) as overdue", today)).
		From(loansTableName)
	if readerID != 0 {
		b = b.Where(sq.Eq{"reader_id": readerID})
	}
	var stats model.LoanStats
	if err := r.get(ctx, &stats, b, errs.ErrLoanNotFound); err != nil {
		return model.LoanStats{}, err
	}
	return stats, nil
}
