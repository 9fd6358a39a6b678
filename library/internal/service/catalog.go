package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/library/internal/repository"
)

func (s *Service) CreateReader(ctx context.Context, req model.CreateReaderRequest) (model.Reader, error) {
	return s.repo.CreateReader(ctx, req, s.today())
}

func (s *Service) GetReader(ctx context.Context, id int64) (model.Reader, error) {
	return s.repo.GetReader(ctx, id)
}

func (s *Service) ListReaders(ctx context.Context, f model.ReaderFilter) (model.ListReaders, error) {
	return s.repo.ListReaders(ctx, f)
}

func (s *Service) UpdateReader(ctx context.Context, id int64, req model.UpdateReaderRequest) (model.Reader, error) {
	return s.repo.UpdateReader(ctx, id, req)
}

func (s *Service) DeleteReader(ctx context.Context, id int64) error {
	return s.repo.RunInTx(ctx, func(tx repository.Repository) error {
		if _, err := tx.LockReader(ctx, id); err != nil {
			return err
		}
		if err := noActiveLoans(ctx, tx, model.LoanFilter{ReaderID: id}); err != nil {
			return err
		}
		return tx.DeleteReader(ctx, id)
	})
}

func noActiveLoans(ctx context.Context, tx repository.Repository, f model.LoanFilter) error {
	n, err := tx.CountActiveLoans(ctx, f)
	if err != nil {
		return err
	}
	if n > 0 {
		return errs.ErrHasActiveLoans
	}
	return nil
}

func (s *Service) CreateGenre(ctx context.Context, req model.GenreRequest) (model.Genre, error) {
	return s.repo.CreateGenre(ctx, req.Name)
}

func (s *Service) GetGenre(ctx context.Context, id int64) (model.Genre, error) {
	return s.repo.GetGenre(ctx, id)
}

func (s *Service) ListGenres(ctx context.Context) ([]model.Genre, error) {
	return s.repo.ListGenres(ctx)
}

func (s *Service) RenameGenre(ctx context.Context, id int64, req model.GenreRequest) (model.Genre, error) {
	return s.repo.RenameGenre(ctx, id, req.Name)
}

func (s *Service) DeleteGenre(ctx context.Context, id int64) error {
	return s.repo.DeleteGenre(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	var book model.Book
	err := s.repo.RunInTx(ctx, func(tx repository.Repository) error {
		created, err := tx.CreateBook(ctx, req)
		if err != nil {
			return err
		}
		if len(req.GenreIDs) > 0 {
			if err = tx.SetBookGenres(ctx, created.ID, req.GenreIDs); err != nil {
				return err
			}
		}
		book, err = tx.GetBook(ctx, created.ID)
		return err
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, f)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error) {
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.RunInTx(ctx, func(tx repository.Repository) error {
		if _, err := tx.GetBook(ctx, id); err != nil {
			return err
		}
		if err := noActiveLoans(ctx, tx, model.LoanFilter{BookID: id}); err != nil {
			return err
		}
		return tx.DeleteBook(ctx, id)
	})
}

// SetBookGenres replaces the genre set of a book.
func (s *Service) SetBookGenres(ctx context.Context, bookID int64, genreIDs []int64) (model.Book, error) {
	var book model.Book
	err := s.repo.RunInTx(ctx, func(tx repository.Repository) error {
		if _, err := tx.GetBook(ctx, bookID); err != nil {
			return err
		}
		if err := tx.SetBookGenres(ctx, bookID, genreIDs); err != nil {
			return err
		}
		var err error
		book, err = tx.GetBook(ctx, bookID)
		return err
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) CreateCopy(ctx context.Context, req model.CreateCopyRequest) (model.BookCopy, error) {
	if req.Condition != "" && !req.Condition.Valid() {
		return model.BookCopy{}, errs.ErrInvalidCondition
	}
	if _, err := s.repo.GetBook(ctx, req.BookID); err != nil {
		return model.BookCopy{}, err
	}
	return s.repo.CreateCopy(ctx, req)
}

func (s *Service) GetCopy(ctx context.Context, id int64) (model.BookCopy, error) {
	return s.repo.GetCopy(ctx, id)
}

func (s *Service) ListCopies(ctx context.Context, bookID int64, availableOnly bool) ([]model.BookCopy, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return nil, err
	}
	return s.repo.ListCopies(ctx, bookID, availableOnly)
}

func (s *Service) UpdateCopy(ctx context.Context, id int64, req model.UpdateCopyRequest) (model.BookCopy, error) {
	if req.Condition != nil && !req.Condition.Valid() {
		return model.BookCopy{}, errs.ErrInvalidCondition
	}
	return s.repo.UpdateCopy(ctx, id, req)
}

func (s *Service) DeleteCopy(ctx context.Context, id int64) error {
	return s.repo.RunInTx(ctx, func(tx repository.Repository) error {
		if _, err := tx.LockCopy(ctx, id); err != nil {
			return err
		}
		if err := noActiveLoans(ctx, tx, model.LoanFilter{CopyID: id}); err != nil {
			return err
		}
		return tx.DeleteCopy(ctx, id)
	})
}

// WriteOffCopy takes a copy out of circulation. A copy on loan cannot be written off.
func (s *Service) WriteOffCopy(ctx context.Context, id int64) (model.BookCopy, error) {
	var res model.BookCopy
	err := s.repo.RunInTx(ctx, func(tx repository.Repository) error {
		if _, err := tx.LockCopy(ctx, id); err != nil {
			return err
		}
		if err := noActiveLoans(ctx, tx, model.LoanFilter{CopyID: id}); err != nil {
			return err
		}
		if err := tx.SetCopyAvailable(ctx, id, false); err != nil {
			return err
		}
		var err error
		res, err = tx.GetCopy(ctx, id)
		return err
	})
	if err != nil {
		return model.BookCopy{}, err
	}
	s.log.Info("copy written off", zap.Int64("copyID", res.ID), zap.String("inventoryNumber", res.InventoryNumber))
	return res, nil
}

func (s *Service) SearchCopies(ctx context.Context, f model.CopyFilter) ([]model.BookCopy, error) {
	if f.Condition != "" && !f.Condition.Valid() {
		return nil, errs.ErrInvalidCondition
	}
	return s.repo.SearchCopies(ctx, f)
}

// CopyStats covers every copy when bookID is zero.
func (s *Service) CopyStats(ctx context.Context, bookID int64) (model.CopyStats, error) {
	if bookID != 0 {
		if _, err := s.repo.GetBook(ctx, bookID); err != nil {
			return model.CopyStats{}, err
		}
	}
	return s.repo.CopyStats(ctx, bookID)
}
