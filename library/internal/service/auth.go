package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/pkg/auth"
)

var ErrNoTokenIssuer = errors.New("token issuer is not configured")

func (s *Service) CreateLibrarian(ctx context.Context, req model.CreateLibrarianRequest) (model.Librarian, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Librarian{}, errors.Wrap(err, "bcrypt")
	}
	l, err := s.repo.CreateLibrarian(ctx, model.Librarian{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		HireDate:     s.today(),
		Position:     req.Position,
	})
	if err != nil {
		return model.Librarian{}, err
	}
	s.log.Info("librarian created", zap.Int64("librarianID", l.ID), zap.String("email", l.Email))
	return l, nil
}

// Authenticate fails with errs.ErrBadCredentials for an unknown email and a wrong password alike.
func (s *Service) Authenticate(ctx context.Context, email, password string) (model.Librarian, error) {
	l, err := s.repo.GetLibrarianByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Librarian{}, errs.ErrBadCredentials
		}
		return model.Librarian{}, err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(l.PasswordHash), []byte(password)); err != nil {
		return model.Librarian{}, errs.ErrBadCredentials
	}
	return l, nil
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if s.tokens == nil {
		return model.LoginResponse{}, ErrNoTokenIssuer
	}
	l, err := s.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return model.LoginResponse{}, err
	}
	token, err := s.tokens.Issue(auth.Profile{LibrarianID: l.ID, Name: l.Name, Email: l.Email})
	if err != nil {
		return model.LoginResponse{}, errors.Wrap(err, "issue token")
	}
	return model.LoginResponse{Token: token, Librarian: l}, nil
}

func (s *Service) ChangePassword(ctx context.Context, librarianID int64, req model.ChangePasswordRequest) error {
	l, err := s.repo.GetLibrarian(ctx, librarianID)
	if err != nil {
		return err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(l.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errs.ErrBadCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "bcrypt")
	}
	return s.repo.UpdateLibrarianPassword(ctx, librarianID, string(hash))
}
