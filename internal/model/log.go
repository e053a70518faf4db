package model

import "fmt"

// TimeType records how a log's ShowTime was derived when the log was
// written: from one of the two conventional slots or from an explicit
// hour and minute.
type TimeType string

const (
	TimeMatinee TimeType = "matinee"
	TimeSoiree  TimeType = "soiree"
	TimeCustom  TimeType = "custom"
)

// Valid reports whether t is a known time type.
func (t TimeType) Valid() bool {
	switch t {
	case TimeMatinee, TimeSoiree, TimeCustom:
		return true
	}
	return false
}

// Log is a theater-visit record anchored to one seat.  SeatID is a weak
// reference into the static seat templates; deleting or reshaping a
// template does not cascade to logs.  Multiple logs may share a SeatID
// (re-visiting a seat for a different show); the repository's collection
// order decides which one is "current".
//
// Fields:
//
//	ID       – generated unique id, independent of SeatID.
//	SeatID   – seat template id, e.g. "1F-20-20" or "2F-2-LB7".
//	Title    – show name (required; enforced at the handler boundary).
//	Date     – calendar date of the visit (ISO string).
//	ShowTime – display string: "matinee", "soiree" or "HH:MM".
//	TimeType – how ShowTime was derived; not used to recompute it on read.
//	Theater  – theater name, free text.
//	Memo     – free text, optional.
type Log struct {
	ID       string   `json:"id"`
	SeatID   string   `json:"seatId"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	ShowTime string   `json:"showTime"`
	TimeType TimeType `json:"timeType"`
	Theater  string   `json:"theater"`
	Memo     string   `json:"memo"`
}

// DeriveShowTime computes the stored ShowTime string at write time.  For
// the custom type the explicit hour and minute are rendered as "HH:MM";
// for the conventional slots the slot name itself is the display string.
// The result is persisted as-is and never recomputed from TimeType.
func DeriveShowTime(t TimeType, hour, minute int) string {
	switch t {
	case TimeMatinee:
		return "matinee"
	case TimeSoiree:
		return "soiree"
	default:
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
}
