package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// CrossOrigin returns a permissive CORS middleware: any origin, read-only
// methods, preflight answered without reaching the handlers.
func CrossOrigin() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	})
}

// NoSniff marks every response as not subject to content-type sniffing.
func NoSniff() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderXContentTypeOptions, "nosniff")
			return next(c)
		}
	}
}
