package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
)

func (h *Handler) OverdueAmount(c echo.Context) error {
	loanID, err := paramID(c)
	if err != nil {
		return err
	}
	rate, err := queryRate(c, h.fineSvc.DailyRate())
	if err != nil {
		return err
	}
	amount, err := h.fineSvc.OverdueAmount(c.Request().Context(), loanID, rate)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, amount)
}

func (h *Handler) GetLoanFine(c echo.Context) error {
	loanID, err := paramID(c)
	if err != nil {
		return err
	}
	fine, err := h.fineSvc.GetFineByLoan(c.Request().Context(), loanID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) CreateFine(c echo.Context) error {
	librarian, err := librarianID(c)
	if err != nil {
		return err
	}
	var req model.CreateFineRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	req.LibrarianID = librarian
	fine, err := h.fineSvc.CreateFine(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, fine)
}

func (h *Handler) AutoCreateFines(c echo.Context) error {
	var req model.AutoFinesRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	rate := h.fineSvc.DailyRate()
	if req.DailyRate != nil {
		rate = *req.DailyRate
	}
	fines, err := h.fineSvc.AutoCreateOverdueFines(c.Request().Context(), rate)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) PayFine(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	fine, err := h.fineSvc.PayFine(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) GetFine(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	fine, err := h.fineSvc.GetFine(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) ListFines(c echo.Context) error {
	var (
		f   model.FineFilter
		err error
	)
	if f.ReaderID, err = queryInt64(c, "readerId"); err != nil {
		return err
	}
	if f.LoanID, err = queryInt64(c, "loanId"); err != nil {
		return err
	}
	if f.UnpaidOnly, err = queryBool(c, "unpaidOnly"); err != nil {
		return err
	}
	fines, err := h.fineSvc.ListFines(c.Request().Context(), f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) ListReaderFines(c echo.Context) error {
	readerID, err := paramID(c)
	if err != nil {
		return err
	}
	unpaidOnly, err := queryBool(c, "unpaidOnly")
	if err != nil {
		return err
	}
	fines, err := h.fineSvc.ListReaderFines(c.Request().Context(), readerID, unpaidOnly)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) FineStats(c echo.Context) error {
	readerID, err := queryInt64(c, "readerId")
	if err != nil {
		return err
	}
	stats, err := h.fineSvc.FineStats(c.Request().Context(), readerID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
