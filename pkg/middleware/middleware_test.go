package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sociopath-little-dragon/library-bd/pkg/auth"
	md "github.com/sociopath-little-dragon/library-bd/pkg/middleware"
)

type parserFunc func(string) (auth.Profile, error)

func (f parserFunc) Parse(token string) (auth.Profile, error) { return f(token) }

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()
	parser := parserFunc(func(token string) (auth.Profile, error) {
		if token != "good" {
			return auth.Profile{}, auth.ErrInvalidToken
		}
		return auth.Profile{LibrarianID: 5, Email: "lib@example.com"}, nil
	})

	var tests = []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "ok",
			header:       "Bearer good",
			expectedCode: http.StatusOK,
			expectedBody: "5",
		},
		{
			name:         "no header",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"No Authorization Header"}`,
		},
		{
			name:         "not bearer",
			header:       "Basic Zm9vOmJhcg==",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"Invalid Authorization Header"}`,
		},
		{
			name:         "bad token",
			header:       "Bearer forged",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"JwtAccessDenied"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				p, err := auth.FromContext(c.Request().Context())
				if err != nil {
					return err
				}
				return c.JSON(http.StatusOK, p.LibrarianID)
			}, md.JwtAuthentication(parser))

			r := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				r.Header.Set(md.AuthorizationHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
