package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
)

var readerColumns = []string{"id", "name", "email", "phone_number", "registration_date"}

func (r *repository) CreateReader(ctx context.Context, req model.CreateReaderRequest, registered model.Date) (model.Reader, error) {
	b := qb.Insert(readersTableName).
		Columns("name", "email", "phone_number", "registration_date").
		Values(req.Name, req.Email, req.Phone, registered).
		Suffix("returning " + strings.Join(readerColumns, ", "))

	var reader model.Reader
	if err := r.get(ctx, &reader, b, errs.ErrReaderNotFound); err != nil {
		return model.Reader{}, err
	}
	return reader, nil
}

func (r *repository) GetReader(ctx context.Context, id int64) (model.Reader, error) {
	return r.getReader(ctx, id, false)
}

func (r *repository) LockReader(ctx context.Context, id int64) (model.Reader, error) {
	return r.getReader(ctx, id, true)
}

func (r *repository) getReader(ctx context.Context, id int64, lock bool) (model.Reader, error) {
	b := qb.Select(readerColumns...).
		From(readersTableName).
		Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("for update")
	}
	var reader model.Reader
	if err := r.get(ctx, &reader, b, errs.ErrReaderNotFound); err != nil {
		return model.Reader{}, err
	}
	return reader, nil
}

func (r *repository) ListReaders(ctx context.Context, f model.ReaderFilter) (model.ListReaders, error) {
	b := qb.Select(readerColumns...).
		From(readersTableName).
		OrderBy("name", "id")
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"phone_number": pattern},
		})
	}
	b = paginate(b, f.Page, f.Size)

	readers := make([]model.Reader, 0)
	if err := r.selectAll(ctx, &readers, b); err != nil {
		return model.ListReaders{}, err
	}
	return model.ListReaders{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.Size,
			TotalElements: len(readers),
		},
		Items: readers,
	}, nil
}

func (r *repository) UpdateReader(ctx context.Context, id int64, req model.UpdateReaderRequest) (model.Reader, error) {
	set := sq.Eq{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Phone != nil {
		set["phone_number"] = *req.Phone
	}
	if len(set) == 0 {
		return r.GetReader(ctx, id)
	}

	b := qb.Update(readersTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + strings.Join(readerColumns, ", "))
	var reader model.Reader
	if err := r.get(ctx, &reader, b, errs.ErrReaderNotFound); err != nil {
		return model.Reader{}, err
	}
	return reader, nil
}

func (r *repository) DeleteReader(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(readersTableName).Where(sq.Eq{"id": id}), errs.ErrReaderNotFound)
}
