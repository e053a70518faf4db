package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"oshilog/internal/handler"
)

// Handlers bundles the handler set the router wires up.
type Handlers struct {
	Tickets  *handler.TicketHandler
	Logs     *handler.LogHandler
	Theater  *handler.TheaterHandler
	Calendar *handler.CalendarHandler
	Home     *handler.HomeHandler
}

// Register registers every route of the service.  The optional cache
// middleware applies only to the read-only projection endpoints; the
// collections themselves are served straight from memory and mutations
// must never be cached.
func Register(e *echo.Echo, h Handlers, cache echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")

	// ---- Tickets ----
	v1.POST("/tickets", h.Tickets.Create)
	v1.GET("/tickets", h.Tickets.List)
	v1.GET("/tickets/:id", h.Tickets.Get)
	v1.PUT("/tickets/:id", h.Tickets.Update)
	v1.PATCH("/tickets/:id/status", h.Tickets.UpdateStatus)
	v1.DELETE("/tickets/:id", h.Tickets.Delete)

	// ---- Logs ----
	v1.POST("/logs", h.Logs.Create)
	v1.GET("/logs", h.Logs.List)
	v1.PUT("/logs/:id", h.Logs.Update)
	v1.DELETE("/logs/:id", h.Logs.Delete)

	// ---- Derived views ----
	views := e.Group("/v1")
	if cache != nil {
		views.Use(cache)
	}
	views.GET("/floors/:floor", h.Theater.Floor)
	views.GET("/calendar/today", h.Calendar.Today)
	views.GET("/calendar/:year/:month", h.Calendar.Month)
	views.GET("/next-event", h.Home.NextEvent)
	views.GET("/summary", h.Home.Summary)
}
