package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORS restricts cross-origin requests to an exact-match allow-list. There is
// no wildcard: the API issues credentialed cookies, so each allowed origin is
// echoed back individually and unknown origins get no CORS headers at all.
func CORS(allowOrigins []string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowOrigins))
	for _, origin := range allowOrigins {
		allowed[origin] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			res := c.Response()

			if _, ok := allowed[origin]; ok {
				res.Header().Set(echo.HeaderAccessControlAllowOrigin, origin)
				res.Header().Set(echo.HeaderAccessControlAllowCredentials, "true")
				res.Header().Add(echo.HeaderVary, echo.HeaderOrigin)
			}

			if c.Request().Method == http.MethodOptions {
				if _, ok := allowed[origin]; ok {
					res.Header().Set(echo.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
					res.Header().Set(echo.HeaderAccessControlAllowHeaders, "Authorization, Content-Type")
				}
				return c.NoContent(http.StatusOK)
			}

			return next(c)
		}
	}
}
