package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"oshilog/internal/model"
	"oshilog/internal/repository"
)

// LogHandler exposes the seat-visit log collection over HTTP.
type LogHandler struct {
	Logs *repository.LogRepo
}

// NewLogHandler constructs a LogHandler.
func NewLogHandler(logs *repository.LogRepo) *LogHandler {
	return &LogHandler{Logs: logs}
}

// logBody is the JSON payload for create and full update.  The show time
// is derived server-side from timeType (and hour/minute for custom) when
// the log is written; the resulting string is stored verbatim.
type logBody struct {
	SeatID   string         `json:"seatId"`
	Title    string         `json:"title"`
	Date     string         `json:"date"`
	TimeType model.TimeType `json:"timeType"`
	Hour     int            `json:"hour"`
	Minute   int            `json:"minute"`
	Theater  string         `json:"theater"`
	Memo     string         `json:"memo"`
}

func (b *logBody) validate() string {
	if strings.TrimSpace(b.SeatID) == "" {
		return "seatId is required"
	}
	if strings.TrimSpace(b.Title) == "" {
		return "title is required"
	}
	if b.TimeType == "" {
		b.TimeType = model.TimeMatinee
	}
	if !b.TimeType.Valid() {
		return "invalid timeType"
	}
	if b.TimeType == model.TimeCustom {
		if b.Hour < 0 || b.Hour > 23 || b.Minute < 0 || b.Minute > 59 {
			return "invalid hour/minute"
		}
	}
	return ""
}

func (b *logBody) data() repository.LogData {
	return repository.LogData{
		SeatID:   b.SeatID,
		Title:    b.Title,
		Date:     b.Date,
		ShowTime: model.DeriveShowTime(b.TimeType, b.Hour, b.Minute),
		TimeType: b.TimeType,
		Theater:  b.Theater,
		Memo:     b.Memo,
	}
}

// Create handles POST /v1/logs.
func (h *LogHandler) Create(c echo.Context) error {
	var body logBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	l, err := h.Logs.Add(c.Request().Context(), body.data())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save log"})
	}
	return c.JSON(http.StatusCreated, l)
}

// List handles GET /v1/logs.  With ?seat= it returns the seat's current
// log together with its full history, so callers can choose between the
// "last written wins" view and the complete revisit record.
func (h *LogHandler) List(c echo.Context) error {
	if seatID := c.QueryParam("seat"); seatID != "" {
		resp := struct {
			Current *model.Log  `json:"current"`
			All     []model.Log `json:"all"`
		}{All: []model.Log{}}
		if cur, ok := h.Logs.GetBySeatID(seatID); ok {
			resp.Current = &cur
		}
		if all := h.Logs.GetAllBySeatID(seatID); all != nil {
			resp.All = all
		}
		return c.JSON(http.StatusOK, resp)
	}
	logs := h.Logs.All()
	if logs == nil {
		logs = []model.Log{}
	}
	return c.JSON(http.StatusOK, logs)
}

// Update handles PUT /v1/logs/:id.
func (h *LogHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.Logs.GetByID(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "log not found"})
	}
	var body logBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	if err := h.Logs.Update(c.Request().Context(), id, body.data()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save log"})
	}
	l, _ := h.Logs.GetByID(id)
	return c.JSON(http.StatusOK, l)
}

// Delete handles DELETE /v1/logs/:id.  The interactive "are you sure"
// step is a client concern; by the time the request arrives the decision
// has been made.
func (h *LogHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.Logs.GetByID(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "log not found"})
	}
	if err := h.Logs.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete log"})
	}
	return c.NoContent(http.StatusNoContent)
}
