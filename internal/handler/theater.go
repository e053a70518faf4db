package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"oshilog/internal/repository"
	"oshilog/internal/seatmap"
)

// TheaterHandler serves the floor seat maps with live log status merged in.
type TheaterHandler struct {
	Logs *repository.LogRepo
}

// NewTheaterHandler constructs a TheaterHandler.
func NewTheaterHandler(logs *repository.LogRepo) *TheaterHandler {
	return &TheaterHandler{Logs: logs}
}

// Floor handles GET /v1/floors/:floor.  The static template is merged
// with the current log collection on every request; the merge is pure, so
// this is always consistent with the stores at the moment of the call.
func (h *TheaterHandler) Floor(c echo.Context) error {
	n, err := strconv.Atoi(c.Param("floor"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid floor"})
	}
	template, ok := seatmap.Floor(n)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "floor not found"})
	}
	return c.JSON(http.StatusOK, seatmap.MergeStatus(template, h.Logs.HasSeat))
}
