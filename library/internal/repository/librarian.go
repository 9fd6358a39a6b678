package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
)

var librarianColumns = []string{"id", "name", "email", "password_hash", "hire_date", "position"}

func (r *repository) CreateLibrarian(ctx context.Context, l model.Librarian) (model.Librarian, error) {
	b := qb.Insert(librariansTableName).
		Columns("name", "email", "password_hash", "hire_date", "position").
		Values(l.Name, l.Email, l.PasswordHash, l.HireDate, l.Position).
		Suffix("returning " + strings.Join(librarianColumns, ", "))
	var res model.Librarian
	if err := r.get(ctx, &res, b, errs.ErrLibrarianNotFound); err != nil {
		return model.Librarian{}, err
	}
	return res, nil
}

func (r *repository) GetLibrarian(ctx context.Context, id int64) (model.Librarian, error) {
	return r.getLibrarian(ctx, sq.Eq{"id": id})
}

func (r *repository) GetLibrarianByEmail(ctx context.Context, email string) (model.Librarian, error) {
	return r.getLibrarian(ctx, sq.Eq{"email": email})
}

func (r *repository) getLibrarian(ctx context.Context, where sq.Sqlizer) (model.Librarian, error) {
	b := qb.Select(librarianColumns...).From(librariansTableName).Where(where)
	var res model.Librarian
	if err := r.get(ctx, &res, b, errs.ErrLibrarianNotFound); err != nil {
		return model.Librarian{}, err
	}
	return res, nil
}

func (r *repository) FirstLibrarian(ctx context.Context) (model.Librarian, error) {
	b := qb.Select(librarianColumns...).From(librariansTableName).OrderBy("id").Limit(1)
	var res model.Librarian
	if err := r.get(ctx, &res, b, errs.ErrLibrarianNotFound); err != nil {
		return model.Librarian{}, err
	}
	return res, nil
}

func (r *repository) UpdateLibrarianPassword(ctx context.Context, id int64, hash string) error {
	b := qb.Update(librariansTableName).
		Set("password_hash", hash).
		Where(sq.Eq{"id": id})
	return r.exec(ctx, b, errs.ErrLibrarianNotFound)
}
