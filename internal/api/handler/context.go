package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// idParam parses the numeric :id path parameter.
func idParam(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}
