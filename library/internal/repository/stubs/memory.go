package stubs

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/library/internal/repository"
)

type data struct {
	readers    map[int64]model.Reader
	librarians map[int64]model.Librarian
	genres     map[int64]model.Genre
	books      map[int64]model.Book
	bookGenres map[int64][]int64
	copies     map[int64]model.BookCopy
	loans      map[int64]model.Loan
	fines      map[int64]model.Fine
	seq        map[string]int64
}

func newData() *data {
	return &data{
		readers:    make(map[int64]model.Reader),
		librarians: make(map[int64]model.Librarian),
		genres:     make(map[int64]model.Genre),
		books:      make(map[int64]model.Book),
		bookGenres: make(map[int64][]int64),
		copies:     make(map[int64]model.BookCopy),
		loans:      make(map[int64]model.Loan),
		fines:      make(map[int64]model.Fine),
		seq:        make(map[string]int64),
	}
}

func (d *data) next(table string) int64 {
	d.seq[table]++
	return d.seq[table]
}

func cloneMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (d *data) clone() *data {
	bg := make(map[int64][]int64, len(d.bookGenres))
	for k, v := range d.bookGenres {
		bg[k] = append([]int64(nil), v...)
	}
	return &data{
		readers:    cloneMap(d.readers),
		librarians: cloneMap(d.librarians),
		genres:     cloneMap(d.genres),
		books:      cloneMap(d.books),
		bookGenres: bg,
		copies:     cloneMap(d.copies),
		loans:      cloneMap(d.loans),
		fines:      cloneMap(d.fines),
		seq:        cloneMap(d.seq),
	}
}

type store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	d    *data
}

// MockDB is an in-memory implementation of repository.Repository.
// Transactions are serialized and rolled back by restoring a snapshot.
// Writes made outside a transaction are serialized with them.
type MockDB struct {
	s    *store
	inTx bool
}

func NewMockDB() *MockDB {
	return &MockDB{s: &store{d: newData()}}
}

var _ repository.Repository = (*MockDB)(nil)

func (m *MockDB) RunInTx(_ context.Context, fn func(tx repository.Repository) error) error {
	if m.inTx {
		return fn(m)
	}
	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	m.s.mu.RLock()
	snapshot := m.s.d.clone()
	m.s.mu.RUnlock()

	if err := fn(&MockDB{s: m.s, inTx: true}); err != nil {
		m.s.mu.Lock()
		m.s.d = snapshot
		m.s.mu.Unlock()
		return err
	}
	return nil
}

func (m *MockDB) read(fn func(d *data) error) error {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return fn(m.s.d)
}

// write outside a transaction waits for the open one to finish,
// so a rollback never discards it.
func (m *MockDB) write(fn func(d *data) error) error {
	if !m.inTx {
		m.s.txMu.Lock()
		defer m.s.txMu.Unlock()
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return fn(m.s.d)
}

func duplicate(constraint string) error {
	return errors.Wrap(errs.ErrDuplicate, constraint)
}

func contains(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func page[T any](items []T, page, size int) []T {
	if page <= 0 || size <= 0 {
		return items
	}
	from := (page - 1) * size
	if from >= len(items) {
		return []T{}
	}
	to := from + size
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}

// readers

func (m *MockDB) CreateReader(_ context.Context, req model.CreateReaderRequest, registered model.Date) (model.Reader, error) {
	var res model.Reader
	err := m.write(func(d *data) error {
		for _, r := range d.readers {
			if r.Email == req.Email {
				return duplicate("readers_email_key")
			}
		}
		res = model.Reader{
			ID:               d.next("readers"),
			Name:             req.Name,
			Email:            req.Email,
			Phone:            req.Phone,
			RegistrationDate: registered,
		}
		d.readers[res.ID] = res
		return nil
	})
	return res, err
}

func (m *MockDB) GetReader(_ context.Context, id int64) (model.Reader, error) {
	var res model.Reader
	err := m.read(func(d *data) error {
		r, ok := d.readers[id]
		if !ok {
			return errs.ErrReaderNotFound
		}
		res = r
		return nil
	})
	return res, err
}

func (m *MockDB) LockReader(ctx context.Context, id int64) (model.Reader, error) {
	return m.GetReader(ctx, id)
}

func (m *MockDB) ListReaders(_ context.Context, f model.ReaderFilter) (model.ListReaders, error) {
	readers := make([]model.Reader, 0)
	_ = m.read(func(d *data) error {
		for _, r := range d.readers {
			if f.Search == "" || contains(r.Name, f.Search) || contains(r.Email, f.Search) || contains(r.Phone, f.Search) {
				readers = append(readers, r)
			}
		}
		return nil
	})
	sort.Slice(readers, func(i, j int) bool {
		if readers[i].Name != readers[j].Name {
			return readers[i].Name < readers[j].Name
		}
		return readers[i].ID < readers[j].ID
	})
	readers = page(readers, f.Page, f.Size)
	return model.ListReaders{
		Paging: model.Paging{Page: f.Page, PageSize: f.Size, TotalElements: len(readers)},
		Items:  readers,
	}, nil
}

func (m *MockDB) UpdateReader(_ context.Context, id int64, req model.UpdateReaderRequest) (model.Reader, error) {
	var res model.Reader
	err := m.write(func(d *data) error {
		r, ok := d.readers[id]
		if !ok {
			return errs.ErrReaderNotFound
		}
		if req.Email != nil {
			for _, other := range d.readers {
				if other.ID != id && other.Email == *req.Email {
					return duplicate("readers_email_key")
				}
			}
			r.Email = *req.Email
		}
		if req.Name != nil {
			r.Name = *req.Name
		}
		if req.Phone != nil {
			r.Phone = *req.Phone
		}
		d.readers[id] = r
		res = r
		return nil
	})
	return res, err
}

func (m *MockDB) DeleteReader(_ context.Context, id int64) error {
	return m.write(func(d *data) error {
		if _, ok := d.readers[id]; !ok {
			return errs.ErrReaderNotFound
		}
		for lid, l := range d.loans {
			if l.ReaderID == id {
				d.deleteLoan(lid)
			}
		}
		delete(d.readers, id)
		return nil
	})
}

// genres

func (m *MockDB) CreateGenre(_ context.Context, name string) (model.Genre, error) {
	var res model.Genre
	err := m.write(func(d *data) error {
		for _, g := range d.genres {
			if g.Name == name {
				return duplicate("genres_name_key")
			}
		}
		res = model.Genre{ID: d.next("genres"), Name: name}
		d.genres[res.ID] = res
		return nil
	})
	return res, err
}

func (m *MockDB) GetGenre(_ context.Context, id int64) (model.Genre, error) {
	var res model.Genre
	err := m.read(func(d *data) error {
		g, ok := d.genres[id]
		if !ok {
			return errs.ErrGenreNotFound
		}
		res = g
		return nil
	})
	return res, err
}

func (m *MockDB) ListGenres(_ context.Context) ([]model.Genre, error) {
	genres := make([]model.Genre, 0)
	_ = m.read(func(d *data) error {
		for _, g := range d.genres {
			genres = append(genres, g)
		}
		return nil
	})
	sort.Slice(genres, func(i, j int) bool { return genres[i].Name < genres[j].Name })
	return genres, nil
}

func (m *MockDB) RenameGenre(_ context.Context, id int64, name string) (model.Genre, error) {
	var res model.Genre
	err := m.write(func(d *data) error {
		g, ok := d.genres[id]
		if !ok {
			return errs.ErrGenreNotFound
		}
		for _, other := range d.genres {
			if other.ID != id && other.Name == name {
				return duplicate("genres_name_key")
			}
		}
		g.Name = name
		d.genres[id] = g
		res = g
		return nil
	})
	return res, err
}

func (m *MockDB) DeleteGenre(_ context.Context, id int64) error {
	return m.write(func(d *data) error {
		if _, ok := d.genres[id]; !ok {
			return errs.ErrGenreNotFound
		}
		delete(d.genres, id)
		for bookID, ids := range d.bookGenres {
			kept := ids[:0]
			for _, gid := range ids {
				if gid != id {
					kept = append(kept, gid)
				}
			}
			d.bookGenres[bookID] = kept
		}
		return nil
	})
}

// books

func (d *data) isbnTaken(isbn *string, except int64) bool {
	if isbn == nil {
		return false
	}
	for _, b := range d.books {
		if b.ID != except && b.ISBN != nil && *b.ISBN == *isbn {
			return true
		}
	}
	return false
}

func (d *data) withGenres(b model.Book) model.Book {
	b.Genres = make([]model.Genre, 0, len(d.bookGenres[b.ID]))
	for _, gid := range d.bookGenres[b.ID] {
		if g, ok := d.genres[gid]; ok {
			b.Genres = append(b.Genres, g)
		}
	}
	sort.Slice(b.Genres, func(i, j int) bool { return b.Genres[i].Name < b.Genres[j].Name })
	return b
}

func (m *MockDB) CreateBook(_ context.Context, req model.CreateBookRequest) (model.Book, error) {
	var res model.Book
	err := m.write(func(d *data) error {
		if d.isbnTaken(req.ISBN, 0) {
			return duplicate("books_isbn_key")
		}
		res = model.Book{
			ID:          d.next("books"),
			Title:       req.Title,
			Author:      req.Author,
			ISBN:        req.ISBN,
			Year:        req.Year,
			Description: req.Description,
		}
		d.books[res.ID] = res
		res.Genres = []model.Genre{}
		return nil
	})
	return res, err
}

func (m *MockDB) GetBook(_ context.Context, id int64) (model.Book, error) {
	var res model.Book
	err := m.read(func(d *data) error {
		b, ok := d.books[id]
		if !ok {
			return errs.ErrBookNotFound
		}
		res = d.withGenres(b)
		return nil
	})
	return res, err
}

func (m *MockDB) ListBooks(_ context.Context, f model.BookFilter) (model.ListBooks, error) {
	books := make([]model.Book, 0)
	_ = m.read(func(d *data) error {
		for _, b := range d.books {
			if f.Title != "" && !contains(b.Title, f.Title) {
				continue
			}
			if f.Author != "" && !contains(b.Author, f.Author) {
				continue
			}
			b = d.withGenres(b)
			if f.Genre != "" && !hasGenre(b, f.Genre) {
				continue
			}
			if f.AvailableOnly && !d.hasAvailableCopy(b.ID) {
				continue
			}
			books = append(books, b)
		}
		return nil
	})
	sort.Slice(books, func(i, j int) bool {
		if books[i].Title != books[j].Title {
			return books[i].Title < books[j].Title
		}
		return books[i].ID < books[j].ID
	})
	books = page(books, f.Page, f.Size)
	return model.ListBooks{
		Paging: model.Paging{Page: f.Page, PageSize: f.Size, TotalElements: len(books)},
		Items:  books,
	}, nil
}

func hasGenre(b model.Book, name string) bool {
	for _, g := range b.Genres {
		if contains(g.Name, name) {
			return true
		}
	}
	return false
}

func (d *data) hasAvailableCopy(bookID int64) bool {
	for _, c := range d.copies {
		if c.BookID == bookID && c.Available {
			return true
		}
	}
	return false
}

func (m *MockDB) UpdateBook(_ context.Context, id int64, req model.UpdateBookRequest) (model.Book, error) {
	var res model.Book
	err := m.write(func(d *data) error {
		b, ok := d.books[id]
		if !ok {
			return errs.ErrBookNotFound
		}
		if req.ISBN != nil {
			if d.isbnTaken(req.ISBN, id) {
				return duplicate("books_isbn_key")
			}
			isbn := *req.ISBN
			b.ISBN = &isbn
		}
		if req.Title != nil {
			b.Title = *req.Title
		}
		if req.Author != nil {
			b.Author = *req.Author
		}
		if req.Year != nil {
			year := *req.Year
			b.Year = &year
		}
		if req.Description != nil {
			b.Description = *req.Description
		}
		d.books[id] = b
		res = d.withGenres(b)
		return nil
	})
	return res, err
}

func (m *MockDB) DeleteBook(_ context.Context, id int64) error {
	return m.write(func(d *data) error {
		if _, ok := d.books[id]; !ok {
			return errs.ErrBookNotFound
		}
		for cid, c := range d.copies {
			if c.BookID == id {
				d.deleteCopy(cid)
			}
		}
		delete(d.bookGenres, id)
		delete(d.books, id)
		return nil
	})
}

func (m *MockDB) SetBookGenres(_ context.Context, bookID int64, genreIDs []int64) error {
	return m.write(func(d *data) error {
		if _, ok := d.books[bookID]; !ok {
			return errs.ErrBookNotFound
		}
		ids := make([]int64, 0, len(genreIDs))
		seen := make(map[int64]struct{}, len(genreIDs))
		for _, gid := range genreIDs {
			if _, ok := d.genres[gid]; !ok {
				return errs.ErrGenreNotFound
			}
			if _, ok := seen[gid]; ok {
				continue
			}
			seen[gid] = struct{}{}
			ids = append(ids, gid)
		}
		d.bookGenres[bookID] = ids
		return nil
	})
}

// copies

func (m *MockDB) CreateCopy(_ context.Context, req model.CreateCopyRequest) (model.BookCopy, error) {
	var res model.BookCopy
	err := m.write(func(d *data) error {
		if _, ok := d.books[req.BookID]; !ok {
			return errs.ErrBookNotFound
		}
		for _, c := range d.copies {
			if c.InventoryNumber == req.InventoryNumber {
				return duplicate("book_copies_inventory_number_key")
			}
		}
		condition := req.Condition
		if condition == "" {
			condition = model.ConditionGood
		}
		res = model.BookCopy{
			ID:              d.next("book_copies"),
			BookID:          req.BookID,
			InventoryNumber: req.InventoryNumber,
			Condition:       condition,
			Location:        req.Location,
			Available:       true,
		}
		d.copies[res.ID] = res
		return nil
	})
	return res, err
}

func (m *MockDB) GetCopy(_ context.Context, id int64) (model.BookCopy, error) {
	var res model.BookCopy
	err := m.read(func(d *data) error {
		c, ok := d.copies[id]
		if !ok {
			return errs.ErrCopyNotFound
		}
		res = c
		return nil
	})
	return res, err
}

func (m *MockDB) LockCopy(ctx context.Context, id int64) (model.BookCopy, error) {
	return m.GetCopy(ctx, id)
}

func (m *MockDB) ListCopies(_ context.Context, bookID int64, availableOnly bool) ([]model.BookCopy, error) {
	copies := make([]model.BookCopy, 0)
	_ = m.read(func(d *data) error {
		for _, c := range d.copies {
			if c.BookID == bookID && (!availableOnly || c.Available) {
				copies = append(copies, c)
			}
		}
		return nil
	})
	sort.Slice(copies, func(i, j int) bool { return copies[i].InventoryNumber < copies[j].InventoryNumber })
	return copies, nil
}

func (m *MockDB) UpdateCopy(_ context.Context, id int64, req model.UpdateCopyRequest) (model.BookCopy, error) {
	var res model.BookCopy
	err := m.write(func(d *data) error {
		c, ok := d.copies[id]
		if !ok {
			return errs.ErrCopyNotFound
		}
		if req.Condition != nil {
			c.Condition = *req.Condition
		}
		if req.Location != nil {
			c.Location = *req.Location
		}
		d.copies[id] = c
		res = c
		return nil
	})
	return res, err
}

func (m *MockDB) SetCopyAvailable(_ context.Context, id int64, available bool) error {
	return m.write(func(d *data) error {
		c, ok := d.copies[id]
		if !ok {
			return errs.ErrCopyNotFound
		}
		c.Available = available
		d.copies[id] = c
		return nil
	})
}

func (m *MockDB) DeleteCopy(_ context.Context, id int64) error {
	return m.write(func(d *data) error {
		if _, ok := d.copies[id]; !ok {
			return errs.ErrCopyNotFound
		}
		d.deleteCopy(id)
		return nil
	})
}

func (d *data) deleteCopy(id int64) {
	for lid, l := range d.loans {
		if l.CopyID == id {
			d.deleteLoan(lid)
		}
	}
	delete(d.copies, id)
}

func (m *MockDB) SearchCopies(_ context.Context, f model.CopyFilter) ([]model.BookCopy, error) {
	copies := make([]model.BookCopy, 0)
	_ = m.read(func(d *data) error {
		for _, c := range d.copies {
			switch {
			case f.BookID != 0 && c.BookID != f.BookID,
				f.InventoryNumber != "" && !contains(c.InventoryNumber, f.InventoryNumber),
				f.Condition != "" && c.Condition != f.Condition,
				f.Location != "" && !contains(c.Location, f.Location),
				f.AvailableOnly && !c.Available:
				continue
			}
			copies = append(copies, c)
		}
		return nil
	})
	sort.Slice(copies, func(i, j int) bool { return copies[i].InventoryNumber < copies[j].InventoryNumber })
	return copies, nil
}

func (m *MockDB) CopyStats(_ context.Context, bookID int64) (model.CopyStats, error) {
	stats := model.CopyStats{ByCondition: model.NewConditionCounts()}
	_ = m.read(func(d *data) error {
		for _, c := range d.copies {
			if bookID != 0 && c.BookID != bookID {
				continue
			}
			stats.Total++
			if c.Available {
				stats.Available++
			} else {
				stats.Unavailable++
			}
			stats.ByCondition[c.Condition]++
		}
		return nil
	})
	return stats, nil
}

// librarians

func (m *MockDB) CreateLibrarian(_ context.Context, l model.Librarian) (model.Librarian, error) {
	var res model.Librarian
	err := m.write(func(d *data) error {
		for _, other := range d.librarians {
			if other.Email == l.Email {
				return duplicate("librarians_email_key")
			}
		}
		l.ID = d.next("librarians")
		d.librarians[l.ID] = l
		res = l
		return nil
	})
	return res, err
}

func (m *MockDB) GetLibrarian(_ context.Context, id int64) (model.Librarian, error) {
	var res model.Librarian
	err := m.read(func(d *data) error {
		l, ok := d.librarians[id]
		if !ok {
			return errs.ErrLibrarianNotFound
		}
		res = l
		return nil
	})
	return res, err
}

func (m *MockDB) GetLibrarianByEmail(_ context.Context, email string) (model.Librarian, error) {
	var res model.Librarian
	err := m.read(func(d *data) error {
		for _, l := range d.librarians {
			if l.Email == email {
				res = l
				return nil
			}
		}
		return errs.ErrLibrarianNotFound
	})
	return res, err
}

func (m *MockDB) FirstLibrarian(_ context.Context) (model.Librarian, error) {
	var res model.Librarian
	err := m.read(func(d *data) error {
		found := false
		for _, l := range d.librarians {
			if !found || l.ID < res.ID {
				res = l
				found = true
			}
		}
		if !found {
			return errs.ErrLibrarianNotFound
		}
		return nil
	})
	return res, err
}

func (m *MockDB) UpdateLibrarianPassword(_ context.Context, id int64, hash string) error {
	return m.write(func(d *data) error {
		l, ok := d.librarians[id]
		if !ok {
			return errs.ErrLibrarianNotFound
		}
		l.PasswordHash = hash
		d.librarians[id] = l
		return nil
	})
}

// loans

func (m *MockDB) CreateLoan(_ context.Context, loan model.Loan) (model.Loan, error) {
	err := m.write(func(d *data) error {
		if _, ok := d.readers[loan.ReaderID]; !ok {
			return errs.ErrReaderNotFound
		}
		if _, ok := d.copies[loan.CopyID]; !ok {
			return errs.ErrCopyNotFound
		}
		for _, l := range d.loans {
			if l.CopyID == loan.CopyID && !l.Returned {
				return errs.ErrCopyUnavailable
			}
		}
		loan.ID = d.next("loans")
		loan.Returned = false
		loan.ActualReturnDate = nil
		loan.Status = ""
		d.loans[loan.ID] = loan
		return nil
	})
	if err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

func (m *MockDB) GetLoan(_ context.Context, id int64) (model.Loan, error) {
	var res model.Loan
	err := m.read(func(d *data) error {
		l, ok := d.loans[id]
		if !ok {
			return errs.ErrLoanNotFound
		}
		res = l
		return nil
	})
	return res, err
}

func (m *MockDB) LockLoan(ctx context.Context, id int64) (model.Loan, error) {
	return m.GetLoan(ctx, id)
}

func (d *data) matchLoan(l model.Loan, f model.LoanFilter) bool {
	if f.ReaderID != 0 && l.ReaderID != f.ReaderID {
		return false
	}
	if f.CopyID != 0 && l.CopyID != f.CopyID {
		return false
	}
	if f.BookID != 0 && d.copies[l.CopyID].BookID != f.BookID {
		return false
	}
	if f.ActiveOnly && l.Returned {
		return false
	}
	return true
}

func (m *MockDB) ListLoans(_ context.Context, f model.LoanFilter) ([]model.Loan, error) {
	loans := make([]model.Loan, 0)
	_ = m.read(func(d *data) error {
		for _, l := range d.loans {
			if d.matchLoan(l, f) {
				loans = append(loans, l)
			}
		}
		return nil
	})
	sort.Slice(loans, func(i, j int) bool {
		if !loans[i].LoanDate.Equal(loans[j].LoanDate) {
			return loans[i].LoanDate.After(loans[j].LoanDate)
		}
		return loans[i].ID > loans[j].ID
	})
	return loans, nil
}

func (m *MockDB) CountActiveLoans(_ context.Context, f model.LoanFilter) (int, error) {
	f.ActiveOnly = true
	count := 0
	_ = m.read(func(d *data) error {
		for _, l := range d.loans {
			if d.matchLoan(l, f) {
				count++
			}
		}
		return nil
	})
	return count, nil
}

func (m *MockDB) ListOverdueLoans(_ context.Context, today model.Date) ([]model.Loan, error) {
	loans := make([]model.Loan, 0)
	_ = m.read(func(d *data) error {
		for _, l := range d.loans {
			if !l.Returned && l.ReturnDate.Before(today) {
				loans = append(loans, l)
			}
		}
		return nil
	})
	sort.Slice(loans, func(i, j int) bool {
		if !loans[i].ReturnDate.Equal(loans[j].ReturnDate) {
			return loans[i].ReturnDate.Before(loans[j].ReturnDate)
		}
		return loans[i].ID < loans[j].ID
	})
	return loans, nil
}

func (m *MockDB) MarkLoanReturned(_ context.Context, id int64, actual model.Date) (model.Loan, error) {
	var res model.Loan
	err := m.write(func(d *data) error {
		l, ok := d.loans[id]
		if !ok || l.Returned {
			return errs.ErrLoanNotFound
		}
		l.Returned = true
		l.ActualReturnDate = &actual
		d.loans[id] = l
		res = l
		return nil
	})
	return res, err
}

func (m *MockDB) SetLoanReturnDate(_ context.Context, id int64, returnDate model.Date) (model.Loan, error) {
	var res model.Loan
	err := m.write(func(d *data) error {
		l, ok := d.loans[id]
		if !ok || l.Returned {
			return errs.ErrLoanNotFound
		}
		l.ReturnDate = returnDate
		d.loans[id] = l
		res = l
		return nil
	})
	return res, err
}

func (m *MockDB) LoanStats(_ context.Context, readerID int64, today model.Date) (model.LoanStats, error) {
	var stats model.LoanStats
	_ = m.read(func(d *data) error {
		for _, l := range d.loans {
			if readerID != 0 && l.ReaderID != readerID {
				continue
			}
			stats.Total++
			if l.Returned {
				stats.Returned++
				continue
			}
			stats.Active++
			if l.ReturnDate.Before(today) {
				stats.Overdue++
			}
		}
		return nil
	})
	return stats, nil
}

func (d *data) deleteLoan(id int64) {
	for fid, f := range d.fines {
		if f.LoanID == id {
			delete(d.fines, fid)
		}
	}
	delete(d.loans, id)
}

// fines

func (m *MockDB) CreateFine(_ context.Context, fine model.Fine) (model.Fine, error) {
	err := m.write(func(d *data) error {
		if _, ok := d.loans[fine.LoanID]; !ok {
			return errs.ErrLoanNotFound
		}
		for _, f := range d.fines {
			if f.LoanID == fine.LoanID {
				return errs.ErrFineExists
			}
		}
		fine.ID = d.next("fines")
		fine.Paid = false
		d.fines[fine.ID] = fine
		return nil
	})
	if err != nil {
		return model.Fine{}, err
	}
	return fine, nil
}

func (m *MockDB) GetFine(_ context.Context, id int64) (model.Fine, error) {
	var res model.Fine
	err := m.read(func(d *data) error {
		f, ok := d.fines[id]
		if !ok {
			return errs.ErrFineNotFound
		}
		res = f
		return nil
	})
	return res, err
}

func (m *MockDB) LockFine(ctx context.Context, id int64) (model.Fine, error) {
	return m.GetFine(ctx, id)
}

func (m *MockDB) GetFineByLoan(_ context.Context, loanID int64) (model.Fine, error) {
	var res model.Fine
	err := m.read(func(d *data) error {
		for _, f := range d.fines {
			if f.LoanID == loanID {
				res = f
				return nil
			}
		}
		return errs.ErrFineNotFound
	})
	return res, err
}

func (m *MockDB) ListFines(_ context.Context, filter model.FineFilter) ([]model.Fine, error) {
	fines := make([]model.Fine, 0)
	_ = m.read(func(d *data) error {
		for _, f := range d.fines {
			if filter.ReaderID != 0 && d.loans[f.LoanID].ReaderID != filter.ReaderID {
				continue
			}
			if filter.LoanID != 0 && f.LoanID != filter.LoanID {
				continue
			}
			if filter.UnpaidOnly && f.Paid {
				continue
			}
			fines = append(fines, f)
		}
		return nil
	})
	sort.Slice(fines, func(i, j int) bool {
		if !fines[i].IssuedDate.Equal(fines[j].IssuedDate) {
			return fines[i].IssuedDate.After(fines[j].IssuedDate)
		}
		return fines[i].ID > fines[j].ID
	})
	return fines, nil
}

func (m *MockDB) MarkFinePaid(_ context.Context, id int64) (model.Fine, error) {
	var res model.Fine
	err := m.write(func(d *data) error {
		f, ok := d.fines[id]
		if !ok || f.Paid {
			return errs.ErrFineNotFound
		}
		f.Paid = true
		d.fines[id] = f
		res = f
		return nil
	})
	return res, err
}

func (m *MockDB) FineStats(_ context.Context, readerID int64) (model.FineStats, error) {
	stats := model.FineStats{TotalAmount: decimal.Zero, UnpaidAmount: decimal.Zero}
	_ = m.read(func(d *data) error {
		for _, f := range d.fines {
			if readerID != 0 && d.loans[f.LoanID].ReaderID != readerID {
				continue
			}
			stats.Total++
			stats.TotalAmount = stats.TotalAmount.Add(f.Amount)
			if f.Paid {
				stats.Paid++
				continue
			}
			stats.Unpaid++
			stats.UnpaidAmount = stats.UnpaidAmount.Add(f.Amount)
		}
		return nil
	})
	return stats, nil
}
