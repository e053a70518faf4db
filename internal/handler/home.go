package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"oshilog/internal/projection"
	"oshilog/internal/repository"
)

// HomeHandler serves the landing-page queries: the headline next event
// and the tracked totals.
type HomeHandler struct {
	Tickets   *repository.TicketRepo
	Logs      *repository.LogRepo
	Projector *projection.Projector
}

// NewHomeHandler constructs a HomeHandler.
func NewHomeHandler(t *repository.TicketRepo, l *repository.LogRepo, p *projection.Projector) *HomeHandler {
	return &HomeHandler{Tickets: t, Logs: l, Projector: p}
}

// NextEvent handles GET /v1/next-event.  When nothing upcoming exists the
// event is null rather than a 404: "no plans" is a normal answer here.
func (h *HomeHandler) NextEvent(c echo.Context) error {
	now := time.Now()
	ev, ok := h.Projector.NextUpcomingEvent(now)
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"event": nil})
	}
	days := projection.DaysUntil(ev.Date, now)
	return c.JSON(http.StatusOK, map[string]any{
		"event":     ev,
		"daysUntil": days,
		"label":     projection.RelativeLabel(days),
	})
}

// Summary handles GET /v1/summary.
func (h *HomeHandler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{
		"tickets": len(h.Tickets.All()),
		"logs":    len(h.Logs.All()),
	})
}
