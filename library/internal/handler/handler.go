package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sociopath-little-dragon/library-bd/library/internal/errs"
	"github.com/sociopath-little-dragon/library-bd/pkg/auth"
	md "github.com/sociopath-little-dragon/library-bd/pkg/middleware"
	"github.com/sociopath-little-dragon/library-bd/pkg/serializer"
	"github.com/sociopath-little-dragon/library-bd/pkg/validate"
)

type Handler struct {
	catalogSvc CatalogService
	loanSvc    LoanService
	fineSvc    FineService
	authSvc    AuthService
	tokens     md.TokenParser
	log        *zap.Logger
}

func New(catalog CatalogService, loans LoanService, fines FineService, authSvc AuthService, tokens md.TokenParser, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalog,
		loanSvc:    loans,
		fineSvc:    fines,
		authSvc:    authSvc,
		tokens:     tokens,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.JSONSerializer = serializer.JSONSerializer{}
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/auth/login", h.Login)

	api = api.Group("", md.JwtAuthentication(h.tokens))

	api.POST("/librarians", h.CreateLibrarian)
	api.PUT("/librarians/me/password", h.ChangePassword)

	api.POST("/readers", h.CreateReader)
	api.GET("/readers", h.ListReaders)
	api.GET("/readers/:id", h.GetReader)
	api.PATCH("/readers/:id", h.UpdateReader)
	api.DELETE("/readers/:id", h.DeleteReader)
	api.GET("/readers/:id/loans", h.ListReaderLoans)
	api.GET("/readers/:id/fines", h.ListReaderFines)

	api.POST("/genres", h.CreateGenre)
	api.GET("/genres", h.ListGenres)
	api.GET("/genres/:id", h.GetGenre)
	api.PUT("/genres/:id", h.RenameGenre)
	api.DELETE("/genres/:id", h.DeleteGenre)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.PATCH("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)
	api.PUT("/books/:id/genres", h.SetBookGenres)
	api.POST("/books/:id/copies", h.CreateCopy)
	api.GET("/books/:id/copies", h.ListCopies)

	api.GET("/copies", h.SearchCopies)
	api.GET("/copies/:id", h.GetCopy)
	api.PATCH("/copies/:id", h.UpdateCopy)
	api.DELETE("/copies/:id", h.DeleteCopy)
	api.GET("/copies/:id/loan", h.ActiveLoanByCopy)
	api.POST("/copies/:id/write-off", h.WriteOffCopy)

	api.POST("/loans", h.IssueLoan)
	api.GET("/loans", h.ListLoans)
	api.GET("/loans/overdue", h.ListOverdue)
	api.GET("/loans/:id", h.GetLoan)
	api.POST("/loans/:id/return", h.ReturnLoan)
	api.POST("/loans/:id/extend", h.ExtendLoan)
	api.GET("/loans/:id/overdue-amount", h.OverdueAmount)
	api.GET("/loans/:id/fine", h.GetLoanFine)

	api.POST("/fines", h.CreateFine)
	api.GET("/fines", h.ListFines)
	api.POST("/fines/auto", h.AutoCreateFines)
	api.GET("/fines/:id", h.GetFine)
	api.POST("/fines/:id/pay", h.PayFine)

	api.GET("/stats/loans", h.LoanStats)
	api.GET("/stats/fines", h.FineStats)
	api.GET("/stats/copies", h.CopyStats)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps error kinds to status codes.
func (h *Handler) httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrRuleViolation):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	h.log.Error("internal", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		resp := errs.ValidationErrorResponse{Message: "validation failed"}
		resp.Errors.AdditionalProperties = err.Error()
		return echo.NewHTTPError(http.StatusBadRequest, resp)
	}
	return nil
}

func paramID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return n, nil
}

func queryInt64(c echo.Context, name string) (int64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return n, nil
}

func queryBool(c echo.Context, name string) (bool, error) {
	v := c.QueryParam(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return b, nil
}

// queryRate falls back to def when the parameter is absent.
func queryRate(c echo.Context, def decimal.Decimal) (decimal.Decimal, error) {
	v := c.QueryParam("dailyRate")
	if v == "" {
		return def, nil
	}
	rate, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, echo.NewHTTPError(http.StatusBadRequest, "dailyRate is invalid")
	}
	return rate, nil
}

func librarianID(c echo.Context) (int64, error) {
	p, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return p.LibrarianID, nil
}
