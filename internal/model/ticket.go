package model

import "strings"

// TicketStatus enumerates the lifecycle of a ticket from application to
// the final viewing.  The values are ordered by real-world progression,
// but the store does not enforce forward-only transitions: a user may
// move a ticket back to an earlier state at any time.
type TicketStatus string

const (
	StatusApplying    TicketStatus = "applying"      // application submitted, waiting for the lottery
	StatusWonUnpaid   TicketStatus = "won_unpaid"    // won the lottery, payment outstanding
	StatusPaidUnissue TicketStatus = "paid_unissued" // paid, ticket not yet issued
	StatusIssued      TicketStatus = "issued"        // ticket in hand
	StatusWatched     TicketStatus = "watched"       // performance attended
)

// Valid reports whether s is one of the known ticket statuses.
func (s TicketStatus) Valid() bool {
	switch s {
	case StatusApplying, StatusWonUnpaid, StatusPaidUnissue, StatusIssued, StatusWatched:
		return true
	}
	return false
}

// TicketDates groups the six independent optional date fields of a ticket.
// Values are ISO strings: bare dates ("2024-05-01") or date-times
// ("2024-05-01T18:00").  A field left blank is serialized as absent, never
// as an empty string, so projection code can tell "no deadline" apart from
// "deadline at midnight".  TicketIssueDate never carries a time component.
type TicketDates struct {
	ApplicationStart string `json:"applicationStart,omitempty"`
	ApplicationEnd   string `json:"applicationEnd,omitempty"`
	ResultDate       string `json:"resultDate,omitempty"`
	PaymentDeadline  string `json:"paymentDeadline,omitempty"`
	TicketIssueDate  string `json:"ticketIssueDate,omitempty"`
	ShowDate         string `json:"showDate,omitempty"`
}

// All returns the non-empty date values in declaration order.
func (d TicketDates) All() []string {
	var out []string
	for _, v := range []string{
		d.ApplicationStart, d.ApplicationEnd, d.ResultDate,
		d.PaymentDeadline, d.TicketIssueDate, d.ShowDate,
	} {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Ticket is an external booking lifecycle record, independent of any seat.
// Tickets and Logs are deliberately not linked: a ticket's show date and a
// log's date may describe the same performance, but they remain separate
// records with no referential integrity.
//
// Fields:
//
//	ID        – generated unique id.
//	Title     – show name (required; enforced at the handler boundary).
//	Status    – lifecycle state, see TicketStatus.
//	Dates     – the six optional date fields.
//	Venue     – venue name, optional.
//	SeatInfo  – free-text seat description, optional.
//	Memo      – free text, optional.
//	CreatedAt – set once by the repository, immutable afterwards.
//	UpdatedAt – refreshed by the repository on every update.
type Ticket struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Status    TicketStatus `json:"status"`
	Dates     TicketDates  `json:"dates"`
	Venue     string       `json:"venue,omitempty"`
	SeatInfo  string       `json:"seatInfo,omitempty"`
	Memo      string       `json:"memo,omitempty"`
	CreatedAt string       `json:"createdAt"`
	UpdatedAt string       `json:"updatedAt"`
}

// DatePart returns the calendar-date portion of an ISO value, i.e. the text
// before the first 'T'.  Bare dates are returned unchanged.  All date
// comparisons in the tracker operate on this portion; ISO dates compare
// correctly as plain strings.
func DatePart(iso string) string {
	if i := strings.IndexByte(iso, 'T'); i >= 0 {
		return iso[:i]
	}
	return iso
}

// TimePart extracts an "HH:MM" time of day from an ISO date-time value.
// It returns the empty string when the value has no time component.
func TimePart(iso string) string {
	i := strings.IndexByte(iso, 'T')
	if i < 0 {
		return ""
	}
	rest := iso[i+1:]
	if len(rest) < 5 {
		return ""
	}
	return rest[:5]
}
