// Package calendar builds the 7-column month grid hosting the event
// projections and tracks the visible month.
package calendar

import "time"

// Cell is one slot of the month grid.  Day is 0 for the leading blanks
// that pad the first week, otherwise 1..31.
type Cell struct {
	Day int
}

// Blank reports whether the cell is a leading pad slot.
func (c Cell) Blank() bool { return c.Day == 0 }

// Grid is the rectangular layout of one month: FirstWeekday blank cells
// (0=Sunday) followed by one cell per day.  Trailing blanks are not
// emitted; the grid is only as long as it needs to be.
type Grid struct {
	Year         int
	Month        time.Month
	FirstWeekday int
	DaysInMonth  int
	Cells        []Cell
}

// MonthGrid derives the grid for a (year, month) pair.  Recomputation is
// cheap, so there is no caching: callers rebuild on every navigation.
func MonthGrid(year int, month time.Month) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// day 0 of the next month is the last day of this one
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	g := Grid{
		Year:         year,
		Month:        month,
		FirstWeekday: int(first.Weekday()),
		DaysInMonth:  last.Day(),
	}
	g.Cells = make([]Cell, 0, g.FirstWeekday+g.DaysInMonth)
	for i := 0; i < g.FirstWeekday; i++ {
		g.Cells = append(g.Cells, Cell{})
	}
	for day := 1; day <= g.DaysInMonth; day++ {
		g.Cells = append(g.Cells, Cell{Day: day})
	}
	return g
}

// DateString renders a day of this grid as "YYYY-MM-DD".
func (g Grid) DateString(day int) string {
	return time.Date(g.Year, g.Month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// Navigator holds the only navigable piece of calendar state, the visible
// month.  Every transition replaces the reference date outright with the
// first of the target month, so repeated navigation accumulates no drift.
type Navigator struct {
	current time.Time
}

// NewNavigator starts at the month containing now.
func NewNavigator(now time.Time) *Navigator {
	return &Navigator{current: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())}
}

// Current returns the visible year and month.
func (n *Navigator) Current() (int, time.Month) {
	return n.current.Year(), n.current.Month()
}

// PreviousMonth moves the view one month back.
func (n *Navigator) PreviousMonth() {
	n.current = time.Date(n.current.Year(), n.current.Month()-1, 1, 0, 0, 0, 0, n.current.Location())
}

// NextMonth moves the view one month forward.
func (n *Navigator) NextMonth() {
	n.current = time.Date(n.current.Year(), n.current.Month()+1, 1, 0, 0, 0, 0, n.current.Location())
}

// Today resets the view to the month containing now.
func (n *Navigator) Today(now time.Time) {
	n.current = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
