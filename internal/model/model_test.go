package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatePart(t *testing.T) {
	assert.Equal(t, "2024-05-01", DatePart("2024-05-01"))
	assert.Equal(t, "2024-05-01", DatePart("2024-05-01T18:00"))
}

func TestTimePart(t *testing.T) {
	assert.Equal(t, "", TimePart("2024-05-01"))
	assert.Equal(t, "18:00", TimePart("2024-05-01T18:00"))
	assert.Equal(t, "23:59", TimePart("2024-05-01T23:59:00+09:00"))
}

func TestDeriveShowTime(t *testing.T) {
	assert.Equal(t, "matinee", DeriveShowTime(TimeMatinee, 0, 0))
	assert.Equal(t, "soiree", DeriveShowTime(TimeSoiree, 0, 0))
	assert.Equal(t, "18:30", DeriveShowTime(TimeCustom, 18, 30))
	assert.Equal(t, "09:05", DeriveShowTime(TimeCustom, 9, 5))
}

func TestTicketDatesAll(t *testing.T) {
	d := TicketDates{
		ApplicationEnd: "2024-05-10",
		ShowDate:       "2024-06-01T13:00",
	}
	assert.Equal(t, []string{"2024-05-10", "2024-06-01T13:00"}, d.All())
	assert.Empty(t, TicketDates{}.All())
}

func TestTicketDatesOmitEmptyFields(t *testing.T) {
	// blank date fields must serialize as absent, not as empty strings
	b, err := json.Marshal(Ticket{
		ID:     "t1",
		Title:  "Show A",
		Status: StatusApplying,
		Dates:  TicketDates{ShowDate: "2024-06-01"},
	})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	dates := raw["dates"].(map[string]any)
	assert.Contains(t, dates, "showDate")
	assert.NotContains(t, dates, "paymentDeadline")
	assert.NotContains(t, dates, "applicationStart")
}

func TestStatusValid(t *testing.T) {
	for _, s := range []TicketStatus{StatusApplying, StatusWonUnpaid, StatusPaidUnissue, StatusIssued, StatusWatched} {
		assert.True(t, s.Valid())
	}
	assert.False(t, TicketStatus("cancelled").Valid())
}
