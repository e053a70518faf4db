package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"oshilog/internal/model"
	"oshilog/internal/repository"
)

// TicketHandler exposes the ticket collection over HTTP.  Required-field
// validation lives here, at the form boundary: the repository itself is
// permissive and will persist whatever it is handed.
type TicketHandler struct {
	Tickets *repository.TicketRepo
}

// NewTicketHandler constructs a TicketHandler.
func NewTicketHandler(tickets *repository.TicketRepo) *TicketHandler {
	return &TicketHandler{Tickets: tickets}
}

// ticketBody is the JSON payload for create and full update.
type ticketBody struct {
	Title    string             `json:"title"`
	Status   model.TicketStatus `json:"status"`
	Dates    model.TicketDates  `json:"dates"`
	Venue    string             `json:"venue"`
	SeatInfo string             `json:"seatInfo"`
	Memo     string             `json:"memo"`
}

func (b *ticketBody) validate() string {
	if strings.TrimSpace(b.Title) == "" {
		return "title is required"
	}
	if b.Status == "" {
		b.Status = model.StatusApplying
	}
	if !b.Status.Valid() {
		return "invalid status"
	}
	return ""
}

func (b *ticketBody) data() repository.TicketData {
	return repository.TicketData{
		Title:    b.Title,
		Status:   b.Status,
		Dates:    b.Dates,
		Venue:    b.Venue,
		SeatInfo: b.SeatInfo,
		Memo:     b.Memo,
	}
}

// Create handles POST /v1/tickets.
func (h *TicketHandler) Create(c echo.Context) error {
	var body ticketBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	t, err := h.Tickets.Add(c.Request().Context(), body.data())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save ticket"})
	}
	return c.JSON(http.StatusCreated, t)
}

// List handles GET /v1/tickets with optional ?status= and ?from=&to=
// filters.  Status filtering and range filtering are mutually exclusive;
// status wins when both are supplied.
func (h *TicketHandler) List(c echo.Context) error {
	if status := c.QueryParam("status"); status != "" {
		s := model.TicketStatus(status)
		if !s.Valid() {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid status"})
		}
		return c.JSON(http.StatusOK, orEmptyTickets(h.Tickets.GetByStatus(s)))
	}
	from, to := c.QueryParam("from"), c.QueryParam("to")
	if from != "" && to != "" {
		return c.JSON(http.StatusOK, orEmptyTickets(h.Tickets.GetInDateRange(from, to)))
	}
	return c.JSON(http.StatusOK, orEmptyTickets(h.Tickets.All()))
}

// Get handles GET /v1/tickets/:id.
func (h *TicketHandler) Get(c echo.Context) error {
	t, ok := h.Tickets.GetByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "ticket not found"})
	}
	return c.JSON(http.StatusOK, t)
}

// Update handles PUT /v1/tickets/:id.  The repository treats unknown ids
// as a no-op, so existence is checked here to give the client a 404.
func (h *TicketHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.Tickets.GetByID(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "ticket not found"})
	}
	var body ticketBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	if err := h.Tickets.Update(c.Request().Context(), id, body.data()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save ticket"})
	}
	t, _ := h.Tickets.GetByID(id)
	return c.JSON(http.StatusOK, t)
}

// UpdateStatus handles PATCH /v1/tickets/:id/status, the dedicated
// status-only mutation.
func (h *TicketHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.Tickets.GetByID(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "ticket not found"})
	}
	var body struct {
		Status model.TicketStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if !body.Status.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid status"})
	}
	if err := h.Tickets.UpdateStatus(c.Request().Context(), id, body.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save ticket"})
	}
	t, _ := h.Tickets.GetByID(id)
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /v1/tickets/:id.
func (h *TicketHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.Tickets.GetByID(id); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "ticket not found"})
	}
	if err := h.Tickets.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete ticket"})
	}
	return c.NoContent(http.StatusNoContent)
}

func orEmptyTickets(ts []model.Ticket) []model.Ticket {
	if ts == nil {
		return []model.Ticket{}
	}
	return ts
}
