package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"oshilog/internal/calendar"
	"oshilog/internal/projection"
)

// CalendarHandler serves month grids with the per-day event projections
// already attached, so a client renders a month from a single response.
type CalendarHandler struct {
	Projector *projection.Projector
}

// NewCalendarHandler constructs a CalendarHandler.
func NewCalendarHandler(p *projection.Projector) *CalendarHandler {
	return &CalendarHandler{Projector: p}
}

// dayCell is one rendered grid slot; nil stands for a leading blank, the
// same convention the grid builder uses.
type dayCell struct {
	Day    int                `json:"day"`
	Date   string             `json:"date"`
	Events []projection.Event `json:"events"`
}

// Month handles GET /v1/calendar/:year/:month.
func (h *CalendarHandler) Month(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid year"})
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid month"})
	}
	return c.JSON(http.StatusOK, h.monthPayload(year, time.Month(month)))
}

// Today handles GET /v1/calendar/today: the month containing the current
// date, so a client can land on the calendar without computing year and
// month itself.
func (h *CalendarHandler) Today(c echo.Context) error {
	year, month := calendar.NewNavigator(time.Now()).Current()
	return c.JSON(http.StatusOK, h.monthPayload(year, month))
}

func (h *CalendarHandler) monthPayload(year int, month time.Month) map[string]any {
	grid := calendar.MonthGrid(year, month)
	cells := make([]*dayCell, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		if cell.Blank() {
			cells = append(cells, nil)
			continue
		}
		date := grid.DateString(cell.Day)
		events := h.Projector.EventsOnDate(date)
		if events == nil {
			events = []projection.Event{}
		}
		cells = append(cells, &dayCell{Day: cell.Day, Date: date, Events: events})
	}

	return map[string]any{
		"year":         grid.Year,
		"month":        int(grid.Month),
		"firstWeekday": grid.FirstWeekday,
		"daysInMonth":  grid.DaysInMonth,
		"cells":        cells,
	}
}
