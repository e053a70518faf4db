// Package projection derives calendar-relevant facts from the ticket
// collection without mutating it: the per-date event list and the single
// next upcoming event across all tickets.
package projection

import (
	"math"
	"sort"
	"strconv"
	"time"

	"oshilog/internal/model"
)

// Kind discriminates calendar events.  The set is closed; every event
// carries exactly the fields its kind needs, so callers switch on Kind
// instead of probing loosely-typed maps.
type Kind string

const (
	KindApplying Kind = "applying"  // date falls inside the application window
	KindResult   Kind = "result"    // lottery result announced
	KindPayment  Kind = "payment"   // payment deadline
	KindIssue    Kind = "issue"     // ticket issuing opens
	KindShow     Kind = "show"      // the performance itself
	KindApplyEnd Kind = "apply_end" // application window closes (upcoming-scan only)
)

// Event is a derived fact that a ticket's date field touches a calendar
// date.  It is never stored.  Time is the "HH:MM" part of the underlying
// ISO value and is only ever set for payment and show events.
type Event struct {
	Kind   Kind         `json:"kind"`
	Ticket model.Ticket `json:"ticket"`
	Date   string       `json:"date"`
	Time   string       `json:"time,omitempty"`
}

// TicketSource is the slice of the ticket repository the projector reads.
type TicketSource interface {
	All() []model.Ticket
	GetEventsForDate(date string) []model.Ticket
}

// Projector computes event projections over a ticket source.
type Projector struct {
	tickets TicketSource
}

// New returns a projector reading from the given source.
func New(tickets TicketSource) *Projector {
	return &Projector{tickets: tickets}
}

// EventsOnDate classifies which event kinds fire on the given date for
// each matching ticket.  One ticket can contribute several events on the
// same day (result date equal to show date, for instance).  Kind-check
// order is fixed, so the output order is deterministic for unchanged
// input.
func (p *Projector) EventsOnDate(date string) []Event {
	var events []Event
	for _, t := range p.tickets.GetEventsForDate(date) {
		d := t.Dates
		if d.ApplicationStart != "" && d.ApplicationEnd != "" &&
			date >= d.ApplicationStart && date <= d.ApplicationEnd {
			events = append(events, Event{Kind: KindApplying, Ticket: t, Date: date})
		}
		if d.ResultDate != "" && model.DatePart(d.ResultDate) == date {
			events = append(events, Event{Kind: KindResult, Ticket: t, Date: date})
		}
		if d.PaymentDeadline != "" && model.DatePart(d.PaymentDeadline) == date {
			events = append(events, Event{Kind: KindPayment, Ticket: t, Date: date, Time: model.TimePart(d.PaymentDeadline)})
		}
		if d.TicketIssueDate != "" && d.TicketIssueDate == date {
			events = append(events, Event{Kind: KindIssue, Ticket: t, Date: date})
		}
		if d.ShowDate != "" && model.DatePart(d.ShowDate) == date {
			events = append(events, Event{Kind: KindShow, Ticket: t, Date: date, Time: model.TimePart(d.ShowDate)})
		}
	}
	return events
}

// NextUpcomingEvent scans every ticket and returns the earliest event on
// or after today (now normalized to its calendar date).  Candidate kinds
// per ticket, in check order: application end, result, payment deadline,
// issue date, show date.  The application start is not itself a deadline.
// Ties on the same date resolve by discovery order: ticket iteration
// order first, then kind-check order; the sort is stable so repeated
// calls with unchanged input pick the same event.
func (p *Projector) NextUpcomingEvent(now time.Time) (Event, bool) {
	today := now.Format("2006-01-02")

	var candidates []Event
	add := func(t model.Ticket, kind Kind, iso string) {
		if iso == "" {
			return
		}
		day := model.DatePart(iso)
		if day < today {
			return
		}
		candidates = append(candidates, Event{
			Kind:   kind,
			Ticket: t,
			Date:   day,
			Time:   model.TimePart(iso),
		})
	}

	for _, t := range p.tickets.All() {
		add(t, KindApplyEnd, t.Dates.ApplicationEnd)
		add(t, KindResult, t.Dates.ResultDate)
		add(t, KindPayment, t.Dates.PaymentDeadline)
		add(t, KindIssue, t.Dates.TicketIssueDate)
		add(t, KindShow, t.Dates.ShowDate)
	}
	if len(candidates) == 0 {
		return Event{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Date < candidates[j].Date
	})
	return candidates[0], true
}

// DaysUntil returns the calendar-day distance between now and an ISO
// date, both normalized to midnight.
func DaysUntil(date string, now time.Time) int {
	day, err := time.ParseInLocation("2006-01-02", model.DatePart(date), now.Location())
	if err != nil {
		return 0
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	diff := day.Sub(midnight).Hours() / 24
	return int(math.Ceil(math.Abs(diff)))
}

// RelativeLabel renders a day distance for display.
func RelativeLabel(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return "in " + strconv.Itoa(days) + " days"
	}
}
