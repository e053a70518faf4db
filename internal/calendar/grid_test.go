package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGridLeadingBlanks(t *testing.T) {
	// May 2024 starts on a Wednesday
	g := MonthGrid(2024, time.May)

	assert.Equal(t, 3, g.FirstWeekday)
	assert.Equal(t, 31, g.DaysInMonth)
	require.Len(t, g.Cells, 3+31)
	for i := 0; i < 3; i++ {
		assert.True(t, g.Cells[i].Blank())
	}
	assert.Equal(t, 1, g.Cells[3].Day)
	assert.Equal(t, 31, g.Cells[len(g.Cells)-1].Day)
}

func TestMonthGridNoLeadingBlanksWhenMonthStartsSunday(t *testing.T) {
	// September 2024 starts on a Sunday
	g := MonthGrid(2024, time.September)
	assert.Equal(t, 0, g.FirstWeekday)
	assert.Equal(t, 1, g.Cells[0].Day)
}

func TestMonthGridFebruaryLeapYear(t *testing.T) {
	assert.Equal(t, 29, MonthGrid(2024, time.February).DaysInMonth)
	assert.Equal(t, 28, MonthGrid(2025, time.February).DaysInMonth)
}

func TestDateString(t *testing.T) {
	g := MonthGrid(2024, time.May)
	assert.Equal(t, "2024-05-05", g.DateString(5))
}

func TestNavigatorTransitions(t *testing.T) {
	now := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)
	n := NewNavigator(now)

	year, month := n.Current()
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.January, month)

	// navigating from the 31st must not drift into march via a short month
	n.NextMonth()
	year, month = n.Current()
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.February, month)

	n.PreviousMonth()
	n.PreviousMonth()
	year, month = n.Current()
	assert.Equal(t, 2023, year)
	assert.Equal(t, time.December, month)

	n.Today(now)
	year, month = n.Current()
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.January, month)
}
