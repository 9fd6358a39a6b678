package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
)

var fineColumns = []string{"id", "loan_id", "librarian_id", "amount", "issued_date", "paid"}

func (r *repository) CreateFine(ctx context.Context, fine model.Fine) (model.Fine, error) {
	b := qb.Insert(finesTableName).
		Columns("loan_id", "librarian_id", "amount", "issued_date", "paid").
		Values(fine.LoanID, fine.LibrarianID, fine.Amount, fine.IssuedDate, false).
		Suffix("returning " + strings.Join(fineColumns, ", "))
	var res model.Fine
	if err := r.get(ctx, &res, b, errs.ErrFineNotFound); err != nil {
		return model.Fine{}, err
	}
	return res, nil
}

func (r *repository) GetFine(ctx context.Context, id int64) (model.Fine, error) {
	return r.getFine(ctx, sq.Eq{"id": id}, false)
}

func (r *repository) LockFine(ctx context.Context, id int64) (model.Fine, error) {
	return r.getFine(ctx, sq.Eq{"id": id}, true)
}

func (r *repository) GetFineByLoan(ctx context.Context, loanID int64) (model.Fine, error) {
	return r.getFine(ctx, sq.Eq{"loan_id": loanID}, false)
}

func (r *repository) getFine(ctx context.Context, where sq.Sqlizer, lock bool) (model.Fine, error) {
	b := qb.Select(fineColumns...).From(finesTableName).Where(where)
	if lock {
		b = b.Suffix("for update")
	}
	var fine model.Fine
	if err := r.get(ctx, &fine, b, errs.ErrFineNotFound); err != nil {
		return model.Fine{}, err
	}
	return fine, nil
}

func (r *repository) ListFines(ctx context.Context, f model.FineFilter) ([]model.Fine, error) {
	cols := make([]string, 0, len(fineColumns))
	for _, c := range fineColumns {
		cols = append(cols, "f."+c)
	}
	b := qb.Select(cols...).
		From(finesTableName + " f").
		OrderBy("f.issued_date desc", "f.id desc")
	if f.ReaderID != 0 {
		b = b.Join(fmt.Sprintf("%s l on l.id = f.loan_id", loansTableName)).
			Where(sq.Eq{"l.reader_id": f.ReaderID})
	}
	if f.LoanID != 0 {
		b = b.Where(sq.Eq{"f.loan_id": f.LoanID})
	}
	if f.UnpaidOnly {
		b = b.Where(sq.Eq{"f.paid": false})
	}
	fines := make([]model.Fine, 0)
	if err := r.selectAll(ctx, &fines, b); err != nil {
		return nil, err
	}
	return fines, nil
}

func (r *repository) MarkFinePaid(ctx context.Context, id int64) (model.Fine, error) {
	b := qb.Update(finesTableName).
		Set("paid", true).
		Where(sq.Eq{"id": id, "paid": false}).
		Suffix("returning " + strings.Join(fineColumns, ", "))
	var fine model.Fine
	if err := r.get(ctx, &fine, b, errs.ErrFineNotFound); err != nil {
		return model.Fine{}, err
	}
	return fine, nil
}

func (r *repository) FineStats(ctx context.Context, readerID int64) (model.FineStats, error) {
	b := qb.Select(
		"count(*) as total",
		"count(*) filter (where f.paid) as paid",
		"count(*) filter (where not f.paid) as unpaid",
		"coalesce(sum(f.amount), 0) as total_amount",
		"coalesce(sum(f.amount) filter (where not f.paid), 0) as unpaid_amount",
	).From(finesTableName + " f")
	if readerID != 0 {
		b = b.Join(fmt.Sprintf("%s l on l.id = f.loan_id", loansTableName)).
			Where(sq.Eq{"l.reader_id": readerID})
	}
	var stats model.FineStats
	if err := r.get(ctx, &stats, b, errs.ErrFineNotFound); err != nil {
		return model.FineStats{}, err
	}
	return stats, nil
}
