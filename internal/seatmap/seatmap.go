// Package seatmap holds the static seat topology of the theater (three
// floors of rows, blocks and seat numbers) and the merge step that
// overlays live visit logs onto it.  The templates are fixture data:
// seat identities are generated once from the layout tables and are never
// created or destroyed by user action.
package seatmap

import (
	"encoding/json"
	"fmt"
)

// Status is the derived display state of a seat.  It is a view, never a
// record: a seat's status is always recomputed from the log collection
// and is not persisted anywhere.  Transient UI states like "selected"
// are not part of the model.
type Status string

const (
	StatusVacant Status = "vacant"
	StatusLogged Status = "logged"
)

// Section places a seat relative to the center aisles of a row.
type Section string

const (
	SectionLeft   Section = "left"
	SectionCenter Section = "center"
	SectionRight  Section = "right"
)

// Seat is one seat slot in a template.  Area is the named balcony block
// prefix ("LB"/"RB") or empty for a plain row seat.  The id renders the
// composite key as "{floor}F-{row}-{area}{number}".
type Seat struct {
	ID      string
	Floor   int
	Row     int
	Number  int
	Area    string
	Section Section
	Status  Status
}

// Door marks a structural entrance occupying Span seat-widths in a row.
type Door struct {
	Label string
	Span  int
}

// RowLabel is the printed row number sitting in an aisle slot.
type RowLabel struct {
	Value int
}

// Gap is an invisible structural placeholder (aisle or missing seat).
type Gap struct{}

// Block is a contiguous run of seats in a balcony-style row.  Nil entries
// in Seats are spacers that keep alignment with neighboring rows.
type Block struct {
	Area  string
	Seats []*Seat
}

// Cell is one slot in a row.  The set of implementations is closed:
// Seat, Door, RowLabel, Gap and Block.
type Cell interface {
	cell()
}

func (*Seat) cell()     {}
func (*Door) cell()     {}
func (*RowLabel) cell() {}
func (Gap) cell()       {}
func (*Block) cell()    {}

// Row is one row of a floor template.
type Row struct {
	Number int
	Cells  []Cell
}

// FloorMap is the full template of one floor.
type FloorMap struct {
	Floor int
	Rows  []Row
}

// SeatID renders the composite seat key, e.g. "1F-20-20" or "2F-2-LB7".
func SeatID(floor, row int, area string, number int) string {
	return fmt.Sprintf("%dF-%d-%s%d", floor, row, area, number)
}

func newSeat(floor, row int, area string, number int) *Seat {
	return &Seat{
		ID:      SeatID(floor, row, area, number),
		Floor:   floor,
		Row:     row,
		Number:  number,
		Area:    area,
		Section: sectionFor(area, number),
		Status:  StatusVacant,
	}
}

// sectionFor derives the section from the seat number: the center block
// spans 26-37, everything below is house-left, everything above house-
// right.  Balcony seats take the side their area names.
func sectionFor(area string, number int) Section {
	switch area {
	case "LB":
		return SectionLeft
	case "RB":
		return SectionRight
	}
	switch {
	case number <= 25:
		return SectionLeft
	case number >= 38:
		return SectionRight
	default:
		return SectionCenter
	}
}

// Floor returns the template for floor 1, 2 or 3.
func Floor(n int) (FloorMap, bool) {
	switch n {
	case 1:
		return FirstFloor(), true
	case 2:
		return SecondFloor(), true
	case 3:
		return ThirdFloor(), true
	}
	return FloorMap{}, false
}

// MarshalJSON emits cells with an explicit type discriminator so clients
// never have to guess the shape of a slot.  Gaps marshal as null, the way
// the layout tables denote them.

func (s *Seat) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string  `json:"type"`
		ID      string  `json:"id"`
		Floor   int     `json:"floor"`
		Row     int     `json:"row"`
		Number  int     `json:"number"`
		Area    string  `json:"area,omitempty"`
		Section Section `json:"section"`
		Status  Status  `json:"status"`
	}{"seat", s.ID, s.Floor, s.Row, s.Number, s.Area, s.Section, s.Status})
}

func (d *Door) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Label string `json:"label"`
		Span  int    `json:"span"`
	}{"door", d.Label, d.Span})
}

func (l *RowLabel) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value int    `json:"value"`
	}{"rowLabel", l.Value})
}

func (Gap) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (b *Block) MarshalJSON() ([]byte, error) {
	seats := make([]json.RawMessage, 0, len(b.Seats))
	for _, s := range b.Seats {
		if s == nil {
			seats = append(seats, json.RawMessage("null"))
			continue
		}
		raw, err := s.MarshalJSON()
		if err != nil {
			return nil, err
		}
		seats = append(seats, raw)
	}
	return json.Marshal(struct {
		Type  string            `json:"type"`
		Area  string            `json:"area,omitempty"`
		Seats []json.RawMessage `json:"seats"`
	}{"block", b.Area, seats})
}

func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		RowNumber int    `json:"rowNumber"`
		Cells     []Cell `json:"cells"`
	}{r.Number, r.Cells})
}

func (f FloorMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Floor int   `json:"floor"`
		Rows  []Row `json:"rows"`
	}{f.Floor, f.Rows})
}
