package handler // handler contains the HTTP handlers of the service

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a simple liveness endpoint.  It returns a plain text "ok"
// with an HTTP 200 status code.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
