package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
)

var bookColumns = []string{"id", "title", "author", "isbn", "publish_year", "description"}

func (r *repository) CreateGenre(ctx context.Context, name string) (model.Genre, error) {
	b := qb.Insert(genresTableName).
		Columns("name").
		Values(name).
		Suffix("returning id, name")
	var g model.Genre
	if err := r.get(ctx, &g, b, errs.ErrGenreNotFound); err != nil {
		return model.Genre{}, err
	}
	return g, nil
}

func (r *repository) GetGenre(ctx context.Context, id int64) (model.Genre, error) {
	var g model.Genre
	b := qb.Select("id", "name").From(genresTableName).Where(sq.Eq{"id": id})
	if err := r.get(ctx, &g, b, errs.ErrGenreNotFound); err != nil {
		return model.Genre{}, err
	}
	return g, nil
}

func (r *repository) ListGenres(ctx context.Context) ([]model.Genre, error) {
	genres := make([]model.Genre, 0)
	if err := r.selectAll(ctx, &genres, qb.Select("id", "name").From(genresTableName).OrderBy("name")); err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *repository) RenameGenre(ctx context.Context, id int64, name string) (model.Genre, error) {
	b := qb.Update(genresTableName).
		Set("name", name).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, name")
	var g model.Genre
	if err := r.get(ctx, &g, b, errs.ErrGenreNotFound); err != nil {
		return model.Genre{}, err
	}
	return g, nil
}

func (r *repository) DeleteGenre(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(genresTableName).Where(sq.Eq{"id": id}), errs.ErrGenreNotFound)
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	b := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "publish_year", "description").
		Values(req.Title, req.Author, req.ISBN, req.Year, req.Description).
		Suffix("returning " + strings.Join(bookColumns, ", "))
	var book model.Book
	if err := r.get(ctx, &book, b, errs.ErrBookNotFound); err != nil {
		return model.Book{}, err
	}
	book.Genres = []model.Genre{}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	var book model.Book
	b := qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id})
	if err := r.get(ctx, &book, b, errs.ErrBookNotFound); err != nil {
		return model.Book{}, err
	}
	genres, err := r.bookGenres(ctx, []int64{id})
	if err != nil {
		return model.Book{}, err
	}
	book.Genres = genres[id]
	if book.Genres == nil {
		book.Genres = []model.Genre{}
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error) {
	cols := make([]string, 0, len(bookColumns))
	for _, c := range bookColumns {
		cols = append(cols, "b."+c)
	}
	b := qb.Select(cols...).
		From(booksTableName + " b").
		OrderBy("b.title", "b.id")
	if f.Title != "" {
		b = b.Where(sq.ILike{"b.title": "%" + f.Title + "%"})
	}
	if f.Author != "" {
		b = b.Where(sq.ILike{"b.author": "%" + f.Author + "%"})
	}
	if f.Genre != "" {
		b = b.Where(sq.Expr(fmt.Sprintf(
			"exists (select 1 from %s gb join %s g on g.id = gb.genre_id where gb.book_id = b.id and g.name ilike ?)",
			genresBooksTableName, genresTableName), "%"+f.Genre+"%"))
	}
	if f.AvailableOnly {
		b = b.Where(sq.Expr(fmt.Sprintf(
			"exists (select 1 from %s c where c.book_id = b.id and c.available)", copiesTableName)))
	}
	b = paginate(b, f.Page, f.Size)

	books := make([]model.Book, 0)
	if err := r.selectAll(ctx, &books, b); err != nil {
		return model.ListBooks{}, err
	}

	ids := make([]int64, 0, len(books))
	for _, book := range books {
		ids = append(ids, book.ID)
	}
	genres, err := r.bookGenres(ctx, ids)
	if err != nil {
		return model.ListBooks{}, err
	}
	for i := range books {
		books[i].Genres = genres[books[i].ID]
		if books[i].Genres == nil {
			books[i].Genres = []model.Genre{}
		}
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.Size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

func (r *repository) bookGenres(ctx context.Context, bookIDs []int64) (map[int64][]model.Genre, error) {
	res := make(map[int64][]model.Genre, len(bookIDs))
	if len(bookIDs) == 0 {
		return res, nil
	}
	type row struct {
		BookID int64  `db:"book_id"`
		ID     int64  `db:"id"`
		Name   string `db:"name"`
	}
	var rows []row
	b := qb.Select("gb.book_id", "g.id", "g.name").
		From(genresBooksTableName + " gb").
		Join(fmt.Sprintf("%s g on g.id = gb.genre_id", genresTableName)).
		Where(sq.Eq{"gb.book_id": bookIDs}).
		OrderBy("g.name")
	if err := r.selectAll(ctx, &rows, b); err != nil {
		return nil, err
	}
	for _, rw := range rows {
		res[rw.BookID] = append(res[rw.BookID], model.Genre{ID: rw.ID, Name: rw.Name})
	}
	return res, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error) {
	set := sq.Eq{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Author != nil {
		set["author"] = *req.Author
	}
	if req.ISBN != nil {
		set["isbn"] = *req.ISBN
	}
	if req.Year != nil {
		set["publish_year"] = *req.Year
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if len(set) > 0 {
		b := qb.Update(booksTableName).SetMap(set).Where(sq.Eq{"id": id})
		if err := r.exec(ctx, b, errs.ErrBookNotFound); err != nil {
			return model.Book{}, err
		}
	}
	return r.GetBook(ctx, id)
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(booksTableName).Where(sq.Eq{"id": id}), errs.ErrBookNotFound)
}

func (r *repository) SetBookGenres(ctx context.Context, bookID int64, genreIDs []int64) error {
	del := qb.Delete(genresBooksTableName).Where(sq.Eq{"book_id": bookID})
	query, args, err := del.ToSql()
	if err != nil {
		return err
	}
	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		return mapErr(err, errs.ErrBookNotFound)
	}
	if len(genreIDs) == 0 {
		return nil
	}

	ins := qb.Insert(genresBooksTableName).Columns("genre_id", "book_id")
	for _, gid := range genreIDs {
		ins = ins.Values(gid, bookID)
	}
	query, args, err = ins.Suffix("on conflict do nothing").ToSql()
	if err != nil {
		return err
	}
	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		return mapErr(err, errs.ErrGenreNotFound)
	}
	return nil
}
