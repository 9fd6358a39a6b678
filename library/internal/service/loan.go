package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/library/internal/repository"
)

// IssueLoan lends a copy to a reader. The reader row and then the copy row are locked
// so concurrent issues for the same reader or copy are serialized.
func (s *Service) IssueLoan(ctx context.Context, req model.IssueLoanRequest) (model.Loan, error) {
	term := req.TermDays
	if term == 0 {
		term = DefaultTermDays
	}
	if term < 0 {
		return model.Loan{}, errs.ErrInvalidTerm
	}
	today := s.today()
	loanDate := today
	if req.LoanDate != nil {
		loanDate = *req.LoanDate
	}

	var loan model.Loan
	err := s.repo.RunInTx(ctx, func(tx repository.Repository) error {
		if _, err := tx.LockReader(ctx, req.ReaderID); err != nil {
			return err
		}
		bookCopy, err := tx.LockCopy(ctx, req.CopyID)
		if err != nil {
			return err
		}
		if _, err = tx.GetLibrarian(ctx, req.LibrarianID); err != nil {
			return err
		}
		if !bookCopy.Available {
			return errs.ErrCopyUnavailable
		}
		active, err := tx.CountActiveLoans(ctx, model.LoanFilter{ReaderID: req.ReaderID})
		if err != nil {
			return err
		}
		if active >= MaxActiveLoans {
			return errs.ErrLoanLimit
		}

		librarianID := req.LibrarianID
		loan, err = tx.CreateLoan(ctx, model.Loan{
			ReaderID:    req.ReaderID,
			CopyID:      req.CopyID,
			LibrarianID: &librarianID,
			LoanDate:    loanDate,
			ReturnDate:  loanDate.AddDays(term),
		})
		if err != nil {
			return err
		}
		return tx.SetCopyAvailable(ctx, req.CopyID, false)
	})
	if err != nil {
		return model.Loan{}, err
	}

	s.log.Info("loan issued",
		zap.Int64("loanID", loan.ID),
		zap.Int64("readerID", loan.ReaderID),
		zap.Int64("copyID", loan.CopyID),
		zap.Stringer("returnDate", loan.ReturnDate))
	s.publish(model.NewLoanEvent(model.EventLoanIssued, loan, s.now()))
	return loan.WithStatus(today), nil
}

func (s *Service) ReturnLoan(ctx context.Context, id int64, req model.ReturnLoanRequest) (model.Loan, error) {
	today := s.today()
	actual := today
	if req.ActualReturnDate != nil {
		actual = *req.ActualReturnDate
	}

	var loan model.Loan
	err := s.repo.RunInTx(ctx, func(tx repository.Repository) error {
		current, err := tx.LockLoan(ctx, id)
		if err != nil {
			return err
		}
		if current.Returned {
			return errs.ErrLoanReturned
		}
		if actual.Before(current.LoanDate) {
			return errs.ErrReturnBeforeLoan
		}
		if loan, err = tx.MarkLoanReturned(ctx, id, actual); err != nil {
			return err
		}
		return tx.SetCopyAvailable(ctx, loan.CopyID, true)
	})
	if err != nil {
		return model.Loan{}, err
	}

	s.log.Info("loan returned", zap.Int64("loanID", loan.ID), zap.Stringer("actualReturnDate", actual))
	s.publish(model.NewLoanEvent(model.EventLoanReturned, loan, s.now()))
	return loan.WithStatus(today), nil
}

// ExtendLoan moves the due date forward by extraDays. The whole loan may not exceed
// MaxLoanDays and a loan overdue by more than MaxOverdueDaysForExtension cannot be extended.
func (s *Service) ExtendLoan(ctx context.Context, id int64, extraDays int) (model.Loan, error) {
	if extraDays <= 0 {
		return model.Loan{}, errs.ErrInvalidTerm
	}
	today := s.today()

	var loan model.Loan
	err := s.repo.RunInTx(ctx, func(tx repository.Repository) error {
		current, err := tx.LockLoan(ctx, id)
		if err != nil {
			return err
		}
		if current.Returned {
			return errs.ErrLoanReturned
		}
		newReturn := current.ReturnDate.AddDays(extraDays)
		if newReturn.DaysSince(current.LoanDate) > MaxLoanDays {
			return errs.ErrLoanTooLong
		}
		if current.OverdueDays(today) > MaxOverdueDaysForExtension {
			return errs.ErrOverdueTooLong
		}
		loan, err = tx.SetLoanReturnDate(ctx, id, newReturn)
		return err
	})
	if err != nil {
		return model.Loan{}, err
	}

	s.log.Info("loan extended", zap.Int64("loanID", loan.ID), zap.Stringer("returnDate", loan.ReturnDate))
	s.publish(model.NewLoanEvent(model.EventLoanExtended, loan, s.now()))
	return loan.WithStatus(today), nil
}

// ListOverdue returns unreturned loans past their due date, earliest due date first.
func (s *Service) ListOverdue(ctx context.Context) ([]model.Loan, error) {
	today := s.today()
	loans, err := s.repo.ListOverdueLoans(ctx, today)
	if err != nil {
		return nil, err
	}
	return withStatus(loans, today), nil
}

func (s *Service) GetLoan(ctx context.Context, id int64) (model.Loan, error) {
	loan, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return model.Loan{}, err
	}
	return loan.WithStatus(s.today()), nil
}

func (s *Service) ListLoans(ctx context.Context, f model.LoanFilter) ([]model.Loan, error) {
	loans, err := s.repo.ListLoans(ctx, f)
	if err != nil {
		return nil, err
	}
	return withStatus(loans, s.today()), nil
}

func (s *Service) ListReaderLoans(ctx context.Context, readerID int64, activeOnly bool) ([]model.Loan, error) {
	if _, err := s.repo.GetReader(ctx, readerID); err != nil {
		return nil, err
	}
	return s.ListLoans(ctx, model.LoanFilter{ReaderID: readerID, ActiveOnly: activeOnly})
}

// ActiveLoanByCopy returns the unreturned loan holding the copy.
func (s *Service) ActiveLoanByCopy(ctx context.Context, copyID int64) (model.Loan, error) {
	loans, err := s.repo.ListLoans(ctx, model.LoanFilter{CopyID: copyID, ActiveOnly: true})
	if err != nil {
		return model.Loan{}, err
	}
	if len(loans) == 0 {
		return model.Loan{}, errs.ErrLoanNotFound
	}
	return loans[0].WithStatus(s.today()), nil
}

func (s *Service) LoanStats(ctx context.Context, readerID int64) (model.LoanStats, error) {
	return s.repo.LoanStats(ctx, readerID, s.today())
}

func withStatus(loans []model.Loan, today model.Date) []model.Loan {
	for i := range loans {
		loans[i] = loans[i].WithStatus(today)
	}
	return loans
}
