package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
)

func (h *Handler) CreateReader(c echo.Context) error {
	var req model.CreateReaderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	reader, err := h.catalogSvc.CreateReader(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, reader)
}

func (h *Handler) GetReader(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	reader, err := h.catalogSvc.GetReader(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, reader)
}

func (h *Handler) ListReaders(c echo.Context) error {
	f := model.ReaderFilter{Search: c.QueryParam("search")}
	var err error
	if f.Page, err = queryInt(c, "page"); err != nil {
		return err
	}
	if f.Size, err = queryInt(c, "size"); err != nil {
		return err
	}
	readers, err := h.catalogSvc.ListReaders(c.Request().Context(), f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, readers)
}

func (h *Handler) UpdateReader(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.UpdateReaderRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	reader, err := h.catalogSvc.UpdateReader(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, reader)
}

func (h *Handler) DeleteReader(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err = h.catalogSvc.DeleteReader(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateGenre(c echo.Context) error {
	var req model.GenreRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	genre, err := h.catalogSvc.CreateGenre(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, genre)
}

func (h *Handler) GetGenre(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	genre, err := h.catalogSvc.GetGenre(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, genre)
}

func (h *Handler) ListGenres(c echo.Context) error {
	genres, err := h.catalogSvc.ListGenres(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, genres)
}

func (h *Handler) RenameGenre(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.GenreRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	genre, err := h.catalogSvc.RenameGenre(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, genre)
}

func (h *Handler) DeleteGenre(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err = h.catalogSvc.DeleteGenre(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	book, err := h.catalogSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	book, err := h.catalogSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ListBooks(c echo.Context) error {
	f := model.BookFilter{
		Title:  c.QueryParam("title"),
		Author: c.QueryParam("author"),
		Genre:  c.QueryParam("genre"),
	}
	var err error
	if f.AvailableOnly, err = queryBool(c, "availableOnly"); err != nil {
		return err
	}
	if f.Page, err = queryInt(c, "page"); err != nil {
		return err
	}
	if f.Size, err = queryInt(c, "size"); err != nil {
		return err
	}
	books, err := h.catalogSvc.ListBooks(c.Request().Context(), f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.UpdateBookRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	book, err := h.catalogSvc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err = h.catalogSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) SetBookGenres(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	type Req struct {
		GenreIDs []int64 `json:"genreIds" validate:"dive,gt=0"`
	}
	var req Req
	if err = bind(c, &req); err != nil {
		return err
	}
	book, err := h.catalogSvc.SetBookGenres(c.Request().Context(), id, req.GenreIDs)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateCopy(c echo.Context) error {
	bookID, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.CreateCopyRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	req.BookID = bookID
	bookCopy, err := h.catalogSvc.CreateCopy(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, bookCopy)
}

func (h *Handler) ListCopies(c echo.Context) error {
	bookID, err := paramID(c)
	if err != nil {
		return err
	}
	availableOnly, err := queryBool(c, "availableOnly")
	if err != nil {
		return err
	}
	copies, err := h.catalogSvc.ListCopies(c.Request().Context(), bookID, availableOnly)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, copies)
}

func (h *Handler) GetCopy(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	bookCopy, err := h.catalogSvc.GetCopy(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, bookCopy)
}

func (h *Handler) UpdateCopy(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.UpdateCopyRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	bookCopy, err := h.catalogSvc.UpdateCopy(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, bookCopy)
}

func (h *Handler) DeleteCopy(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err = h.catalogSvc.DeleteCopy(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) WriteOffCopy(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	bookCopy, err := h.catalogSvc.WriteOffCopy(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, bookCopy)
}

func (h *Handler) SearchCopies(c echo.Context) error {
	f := model.CopyFilter{
		InventoryNumber: c.QueryParam("inventoryNumber"),
		Condition:       model.Condition(c.QueryParam("condition")),
		Location:        c.QueryParam("location"),
	}
	var err error
	if f.BookID, err = queryInt64(c, "bookId"); err != nil {
		return err
	}
	if f.AvailableOnly, err = queryBool(c, "availableOnly"); err != nil {
		return err
	}
	copies, err := h.catalogSvc.SearchCopies(c.Request().Context(), f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, copies)
}

func (h *Handler) CopyStats(c echo.Context) error {
	bookID, err := queryInt64(c, "bookId")
	if err != nil {
		return err
	}
	stats, err := h.catalogSvc.CopyStats(c.Request().Context(), bookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
