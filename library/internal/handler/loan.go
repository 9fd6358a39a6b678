package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
)

func (h *Handler) IssueLoan(c echo.Context) error {
	librarian, err := librarianID(c)
	if err != nil {
		return err
	}
	var req model.IssueLoanRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	req.LibrarianID = librarian
	loan, err := h.loanSvc.IssueLoan(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) ReturnLoan(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.ReturnLoanRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	loan, err := h.loanSvc.ReturnLoan(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ExtendLoan(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.ExtendLoanRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	loan, err := h.loanSvc.ExtendLoan(c.Request().Context(), id, req.ExtraDays)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ListOverdue(c echo.Context) error {
	loans, err := h.loanSvc.ListOverdue(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetLoan(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	loan, err := h.loanSvc.GetLoan(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ListLoans(c echo.Context) error {
	var (
		f   model.LoanFilter
		err error
	)
	if f.ReaderID, err = queryInt64(c, "readerId"); err != nil {
		return err
	}
	if f.CopyID, err = queryInt64(c, "copyId"); err != nil {
		return err
	}
	if f.BookID, err = queryInt64(c, "bookId"); err != nil {
		return err
	}
	if f.ActiveOnly, err = queryBool(c, "activeOnly"); err != nil {
		return err
	}
	loans, err := h.loanSvc.ListLoans(c.Request().Context(), f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ListReaderLoans(c echo.Context) error {
	readerID, err := paramID(c)
	if err != nil {
		return err
	}
	activeOnly, err := queryBool(c, "activeOnly")
	if err != nil {
		return err
	}
	loans, err := h.loanSvc.ListReaderLoans(c.Request().Context(), readerID, activeOnly)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ActiveLoanByCopy(c echo.Context) error {
	copyID, err := paramID(c)
	if err != nil {
		return err
	}
	loan, err := h.loanSvc.ActiveLoanByCopy(c.Request().Context(), copyID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) LoanStats(c echo.Context) error {
	readerID, err := queryInt64(c, "readerId")
	if err != nil {
		return err
	}
	stats, err := h.loanSvc.LoanStats(c.Request().Context(), readerID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
