package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
)

var (
	corsAllowMethods = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}, ", ")
	corsAllowHeaders = strings.Join([]string{echo.HeaderContentType, XRequestID}, ", ")
	corsExposeHeader = XRequestID
)

// CORS lets browser clients on an origin matching pattern call the JSON API.
// A nil pattern disables it.
func CORS(pattern *regexp.Regexp) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if pattern == nil {
				return next(c)
			}
			respHeader := c.Response().Header()
			respHeader.Add(echo.HeaderVary, echo.HeaderOrigin)
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin == "" || !pattern.MatchString(origin) {
				return next(c)
			}
			respHeader.Set(echo.HeaderAccessControlAllowOrigin, origin)
			respHeader.Set(echo.HeaderAccessControlExposeHeaders, corsExposeHeader)
			if c.Request().Method == http.MethodOptions {
				respHeader.Set(echo.HeaderAccessControlAllowHeaders, corsAllowHeaders)
				respHeader.Set(echo.HeaderAccessControlAllowMethods, corsAllowMethods)
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}
