package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/library/internal/repository"
)

// ComputeOverdueAmount is zero for returned or not yet overdue loans,
// otherwise overdue days times dailyRate rounded to cents.
func ComputeOverdueAmount(loan model.Loan, dailyRate decimal.Decimal, today model.Date) decimal.Decimal {
	days := loan.OverdueDays(today)
	if days <= 0 {
		return decimal.Zero
	}
	return dailyRate.Mul(decimal.NewFromInt(int64(days))).Round(model.FineAmountPlaces)
}

func (s *Service) ComputeOverdueAmount(loan model.Loan, dailyRate decimal.Decimal) decimal.Decimal {
	return ComputeOverdueAmount(loan, dailyRate, s.today())
}

// OverdueAmount reports what a fine for the loan would be today.
func (s *Service) OverdueAmount(ctx context.Context, loanID int64, dailyRate decimal.Decimal) (model.OverdueAmount, error) {
	if dailyRate.IsNegative() {
		return model.OverdueAmount{}, errs.ErrInvalidAmount
	}
	loan, err := s.repo.GetLoan(ctx, loanID)
	if err != nil {
		return model.OverdueAmount{}, err
	}
	today := s.today()
	return model.OverdueAmount{
		LoanID:      loan.ID,
		OverdueDays: loan.OverdueDays(today),
		DailyRate:   dailyRate,
		Amount:      ComputeOverdueAmount(loan, dailyRate, today),
	}, nil
}

func (s *Service) CreateFine(ctx context.Context, req model.CreateFineRequest) (model.Fine, error) {
	amount := req.Amount.Round(model.FineAmountPlaces)
	if !model.ValidFineAmount(amount) {
		return model.Fine{}, errs.ErrInvalidAmount
	}
	issued := s.today()
	if req.IssuedDate != nil {
		issued = *req.IssuedDate
	}

	var fine model.Fine
	err := s.repo.RunInTx(ctx, func(tx repository.Repository) error {
		if _, err := tx.LockLoan(ctx, req.LoanID); err != nil {
			return err
		}
		if _, err := tx.GetLibrarian(ctx, req.LibrarianID); err != nil {
			return err
		}
		if err := noFine(ctx, tx, req.LoanID); err != nil {
			return err
		}
		librarianID := req.LibrarianID
		var err error
		fine, err = tx.CreateFine(ctx, model.Fine{
			LoanID:      req.LoanID,
			LibrarianID: &librarianID,
			Amount:      amount,
			IssuedDate:  issued,
		})
		return err
	})
	if err != nil {
		return model.Fine{}, err
	}

	s.log.Info("fine created", zap.Int64("fineID", fine.ID), zap.Int64("loanID", fine.LoanID), zap.Stringer("amount", fine.Amount))
	s.publish(model.NewFineEvent(model.EventFineCreated, fine, s.now()))
	return fine, nil
}

func noFine(ctx context.Context, tx repository.Repository, loanID int64) error {
	_, err := tx.GetFineByLoan(ctx, loanID)
	switch {
	case err == nil:
		return errs.ErrFineExists
	case errors.Is(err, errs.ErrNotFound):
		return nil
	default:
		return err
	}
}

// AutoCreateOverdueFines fines every overdue loan that has no fine yet. Each fine is
// committed on its own. Loans without a librarian fall back to the first librarian and
// are skipped when there is none. Fines created before an error are returned with it.
func (s *Service) AutoCreateOverdueFines(ctx context.Context, dailyRate decimal.Decimal) ([]model.Fine, error) {
	if dailyRate.IsNegative() {
		return nil, errs.ErrInvalidAmount
	}
	today := s.today()
	loans, err := s.repo.ListOverdueLoans(ctx, today)
	if err != nil {
		return nil, err
	}

	var fallback *int64
	fallbackLoaded := false
	created := make([]model.Fine, 0)
	for _, loan := range loans {
		amount := ComputeOverdueAmount(loan, dailyRate, today)
		if !amount.IsPositive() {
			continue
		}
		if !model.ValidFineAmount(amount) {
			s.log.Warn("overdue fine exceeds the maximum amount", zap.Int64("loanID", loan.ID), zap.Stringer("amount", amount))
			continue
		}

		librarianID := loan.LibrarianID
		if librarianID == nil {
			if !fallbackLoaded {
				fallbackLoaded = true
				first, err := s.repo.FirstLibrarian(ctx)
				switch {
				case err == nil:
					fallback = &first.ID
				case !errors.Is(err, errs.ErrNotFound):
					return created, err
				}
			}
			if fallback == nil {
				s.log.Warn("no librarian to issue fine", zap.Int64("loanID", loan.ID))
				continue
			}
			librarianID = fallback
		}

		fine, err := s.createOverdueFine(ctx, loan.ID, *librarianID, amount, today)
		switch {
		case err == nil:
			created = append(created, fine)
		case errors.Is(err, errs.ErrFineExists), errors.Is(err, errs.ErrLoanReturned):
			continue
		default:
			return created, err
		}
	}

	events := make([]model.Event, 0, len(created))
	for _, fine := range created {
		events = append(events, model.NewFineEvent(model.EventFineCreated, fine, s.now()))
	}
	s.publish(events...)
	s.log.Info("overdue fines created", zap.Int("overdue", len(loans)), zap.Int("created", len(created)))
	return created, nil
}

func (s *Service) createOverdueFine(ctx context.Context, loanID, librarianID int64, amount decimal.Decimal, today model.Date) (model.Fine, error) {
	var fine model.Fine
	err := s.repo.RunInTx(ctx, func(tx repository.Repository) error {
		loan, err := tx.LockLoan(ctx, loanID)
		if err != nil {
			return err
		}
		if loan.Returned {
			return errs.ErrLoanReturned
		}
		if err = noFine(ctx, tx, loanID); err != nil {
			return err
		}
		fine, err = tx.CreateFine(ctx, model.Fine{
			LoanID:      loanID,
			LibrarianID: &librarianID,
			Amount:      amount,
			IssuedDate:  today,
		})
		return err
	})
	return fine, err
}

func (s *Service) PayFine(ctx context.Context, id int64) (model.Fine, error) {
	var fine model.Fine
	err := s.repo.RunInTx(ctx, func(tx repository.Repository) error {
		current, err := tx.LockFine(ctx, id)
		if err != nil {
			return err
		}
		if current.Paid {
			return errs.ErrFinePaid
		}
		fine, err = tx.MarkFinePaid(ctx, id)
		return err
	})
	if err != nil {
		return model.Fine{}, err
	}

	s.log.Info("fine paid", zap.Int64("fineID", fine.ID), zap.Stringer("amount", fine.Amount))
	s.publish(model.NewFineEvent(model.EventFinePaid, fine, s.now()))
	return fine, nil
}

func (s *Service) GetFine(ctx context.Context, id int64) (model.Fine, error) {
	return s.repo.GetFine(ctx, id)
}

func (s *Service) GetFineByLoan(ctx context.Context, loanID int64) (model.Fine, error) {
	return s.repo.GetFineByLoan(ctx, loanID)
}

func (s *Service) ListFines(ctx context.Context, f model.FineFilter) ([]model.Fine, error) {
	return s.repo.ListFines(ctx, f)
}

func (s *Service) ListReaderFines(ctx context.Context, readerID int64, unpaidOnly bool) ([]model.Fine, error) {
	if _, err := s.repo.GetReader(ctx, readerID); err != nil {
		return nil, err
	}
	return s.repo.ListFines(ctx, model.FineFilter{ReaderID: readerID, UnpaidOnly: unpaidOnly})
}

func (s *Service) FineStats(ctx context.Context, readerID int64) (model.FineStats, error) {
	return s.repo.FineStats(ctx, readerID)
}
