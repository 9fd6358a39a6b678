package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
)

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	resp, err := h.authSvc.Login(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateLibrarian(c echo.Context) error {
	var req model.CreateLibrarianRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	librarian, err := h.authSvc.CreateLibrarian(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, librarian)
}

func (h *Handler) ChangePassword(c echo.Context) error {
	librarian, err := librarianID(c)
	if err != nil {
		return err
	}
	var req model.ChangePasswordRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	if err = h.authSvc.ChangePassword(c.Request().Context(), librarian, req); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
