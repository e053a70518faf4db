package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oshilog/internal/model"
)

// stubSource feeds the projector a fixed ticket slice without touching
// real storage.
type stubSource struct {
	tickets []model.Ticket
}

func (s *stubSource) All() []model.Ticket { return s.tickets }

func (s *stubSource) GetEventsForDate(date string) []model.Ticket {
	var out []model.Ticket
	for _, t := range s.tickets {
		d := t.Dates
		touches := d.ApplicationStart != "" && d.ApplicationEnd != "" &&
			date >= d.ApplicationStart && date <= d.ApplicationEnd
		for _, v := range []string{d.ResultDate, d.PaymentDeadline, d.TicketIssueDate, d.ShowDate} {
			if v != "" && model.DatePart(v) == date {
				touches = true
			}
		}
		if touches {
			out = append(out, t)
		}
	}
	return out
}

func ticket(id, title string, dates model.TicketDates) model.Ticket {
	return model.Ticket{ID: id, Title: title, Status: model.StatusApplying, Dates: dates}
}

func TestEventsOnDateClassifiesKinds(t *testing.T) {
	p := New(&stubSource{tickets: []model.Ticket{
		ticket("t1", "Show A", model.TicketDates{
			ApplicationStart: "2024-06-01",
			ApplicationEnd:   "2024-06-05",
		}),
	}})

	events := p.EventsOnDate("2024-06-03")
	require.Len(t, events, 1)
	assert.Equal(t, KindApplying, events[0].Kind)
	assert.Equal(t, "Show A", events[0].Ticket.Title)
}

func TestEventsOnDateMultipleKindsSameTicket(t *testing.T) {
	// result announced on the same day the show happens
	p := New(&stubSource{tickets: []model.Ticket{
		ticket("t1", "Show A", model.TicketDates{
			ResultDate: "2024-06-10",
			ShowDate:   "2024-06-10T18:00",
		}),
	}})

	events := p.EventsOnDate("2024-06-10")
	require.Len(t, events, 2)
	assert.Equal(t, KindResult, events[0].Kind)
	assert.Equal(t, KindShow, events[1].Kind)
	assert.Equal(t, "18:00", events[1].Time)
	assert.Empty(t, events[0].Time)
}

func TestEventsOnDatePaymentCarriesTime(t *testing.T) {
	p := New(&stubSource{tickets: []model.Ticket{
		ticket("t1", "Show A", model.TicketDates{PaymentDeadline: "2024-06-20T23:59"}),
	}})

	events := p.EventsOnDate("2024-06-20")
	require.Len(t, events, 1)
	assert.Equal(t, KindPayment, events[0].Kind)
	assert.Equal(t, "23:59", events[0].Time)
}

func TestNextUpcomingEventExcludesPastDates(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	p := New(&stubSource{tickets: []model.Ticket{
		ticket("t1", "Past show", model.TicketDates{ShowDate: "2024-06-10T18:00"}),
	}})

	_, ok := p.NextUpcomingEvent(now)
	assert.False(t, ok)
}

func TestNextUpcomingEventIncludesToday(t *testing.T) {
	now := time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)
	p := New(&stubSource{tickets: []model.Ticket{
		ticket("t1", "Tonight", model.TicketDates{ShowDate: "2024-06-15T18:00"}),
	}})

	ev, ok := p.NextUpcomingEvent(now)
	require.True(t, ok)
	assert.Equal(t, KindShow, ev.Kind)
	assert.Equal(t, "2024-06-15", ev.Date)
}

func TestNextUpcomingEventPicksEarliest(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	p := New(&stubSource{tickets: []model.Ticket{
		ticket("t1", "Later", model.TicketDates{ShowDate: "2024-07-01"}),
		ticket("t2", "Sooner", model.TicketDates{PaymentDeadline: "2024-06-05T12:00"}),
	}})

	ev, ok := p.NextUpcomingEvent(now)
	require.True(t, ok)
	assert.Equal(t, KindPayment, ev.Kind)
	assert.Equal(t, "t2", ev.Ticket.ID)
	assert.Equal(t, "12:00", ev.Time)
}

func TestNextUpcomingEventApplicationStartIsNotACandidate(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	p := New(&stubSource{tickets: []model.Ticket{
		ticket("t1", "A", model.TicketDates{
			ApplicationStart: "2024-06-02",
			ApplicationEnd:   "2024-06-09",
		}),
	}})

	ev, ok := p.NextUpcomingEvent(now)
	require.True(t, ok)
	assert.Equal(t, KindApplyEnd, ev.Kind)
	assert.Equal(t, "2024-06-09", ev.Date)
}

func TestNextUpcomingEventTieBreakIsStable(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	p := New(&stubSource{tickets: []model.Ticket{
		ticket("t1", "First", model.TicketDates{ShowDate: "2024-06-20"}),
		ticket("t2", "Second", model.TicketDates{ShowDate: "2024-06-20"}),
	}})

	for i := 0; i < 10; i++ {
		ev, ok := p.NextUpcomingEvent(now)
		require.True(t, ok)
		assert.Equal(t, "t1", ev.Ticket.ID)
	}
}

func TestDaysUntilAndRelativeLabel(t *testing.T) {
	now := time.Date(2024, 6, 15, 17, 45, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil("2024-06-15", now))
	assert.Equal(t, 1, DaysUntil("2024-06-16T09:00", now))
	assert.Equal(t, 10, DaysUntil("2024-06-25", now))

	assert.Equal(t, "today", RelativeLabel(0))
	assert.Equal(t, "tomorrow", RelativeLabel(1))
	assert.Equal(t, "in 10 days", RelativeLabel(10))
}
