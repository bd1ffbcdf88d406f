package v3

import (
	"github.com/labstack/echo/v4"
)

// Runs a handler and routes errors through the error handler the way a
// live server would.
func doRequest(e *echo.Echo, c echo.Context, handler echo.HandlerFunc) {
	err := handler(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
}
