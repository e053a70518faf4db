package seatmap

// MergeStatus overlays log presence onto a floor template: every seat
// whose id the lookup reports as logged gets StatusLogged, all other
// seats keep their baseline status.  Doors, row labels and gaps pass
// through untouched; the lookup is only ever consulted for seats.
//
// The merge is pure and deterministic.  The input template is not
// modified; the result shares no Seat values with it, so callers can
// re-merge on every change without defensive copying of their own.
func MergeStatus(fm FloorMap, hasLog func(seatID string) bool) FloorMap {
	out := FloorMap{Floor: fm.Floor, Rows: make([]Row, len(fm.Rows))}
	for i, row := range fm.Rows {
		merged := Row{Number: row.Number, Cells: make([]Cell, len(row.Cells))}
		for j, cell := range row.Cells {
			switch c := cell.(type) {
			case *Seat:
				merged.Cells[j] = mergeSeat(c, hasLog)
			case *Block:
				b := &Block{Area: c.Area, Seats: make([]*Seat, len(c.Seats))}
				for k, s := range c.Seats {
					if s == nil {
						continue
					}
					b.Seats[k] = mergeSeat(s, hasLog)
				}
				merged.Cells[j] = b
			default:
				merged.Cells[j] = cell
			}
		}
		out.Rows[i] = merged
	}
	return out
}

func mergeSeat(s *Seat, hasLog func(string) bool) *Seat {
	c := *s
	if hasLog(c.ID) {
		c.Status = StatusLogged
	}
	return &c
}
