// Package httpx renders service results and errors for echo handlers.
package httpx

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agro/pkg/apperr"
)

// Status maps an error kind to its HTTP status code.
func Status(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes err as {"error": msg} with the matching status.
func Fail(c echo.Context, err error) error {
	return c.JSON(Status(err), echo.Map{"error": apperr.Message(err)})
}

func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

// ParseID reads a positive integer path parameter.
func ParseID(c echo.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
