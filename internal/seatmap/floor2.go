package seatmap

// Second floor: balcony-style rows built from seat blocks separated by
// aisles.  The outer LB/RB blocks are the named left and right balcony
// sections with their own numbering; nil slots inside a block are spacers
// that keep columns aligned between rows of different widths.

type blockSpec struct {
	area string
	nums []int // 0 marks a spacer slot
}

// ns enumerates from..to inclusive.
func ns(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}

// blockRow materializes a row from block specs, inserting an aisle gap
// between adjacent blocks.
func blockRow(floor, num int, specs ...blockSpec) Row {
	var cells []Cell
	for i, sp := range specs {
		if i > 0 {
			cells = append(cells, Gap{})
		}
		b := &Block{Area: sp.area, Seats: make([]*Seat, len(sp.nums))}
		for k, n := range sp.nums {
			if n != 0 {
				b.Seats[k] = newSeat(floor, num, sp.area, n)
			}
		}
		cells = append(cells, b)
	}
	return Row{Number: num, Cells: cells}
}

// SecondFloor builds the floor 2 template.
func SecondFloor() FloorMap {
	rows := []Row{
		// 1st row: LB(6) - 9 - 8 - 7 - 12 - 7 - 8 - 9 - RB(6)
		blockRow(2, 1,
			blockSpec{area: "LB", nums: ns(1, 6)},
			blockSpec{nums: ns(2, 10)},
			blockSpec{nums: ns(11, 18)},
			blockSpec{nums: ns(19, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 44)},
			blockSpec{nums: ns(45, 52)},
			blockSpec{nums: ns(53, 61)},
			blockSpec{area: "RB", nums: ns(1, 6)},
		),
		// 2nd row: LB(4) - 8 - 9 - 8 - 12 - 8 - 9 - 8 - RB(4)
		blockRow(2, 2,
			blockSpec{area: "LB", nums: ns(7, 10)},
			blockSpec{nums: ns(1, 8)},
			blockSpec{nums: ns(9, 17)},
			blockSpec{nums: ns(18, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 45)},
			blockSpec{nums: ns(46, 54)},
			blockSpec{nums: ns(55, 62)},
			blockSpec{area: "RB", nums: ns(7, 10)},
		),
		// 3rd row: balconies end here; edge blocks shrink with spacers
		blockRow(2, 3,
			blockSpec{area: "LB", nums: []int{0, 0, 0, 0}},
			blockSpec{nums: []int{0, 0, 3, 4, 5, 6, 7, 0}},
			blockSpec{nums: ns(8, 17)},
			blockSpec{nums: ns(18, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 45)},
			blockSpec{nums: ns(46, 55)},
			blockSpec{nums: ns(56, 60)},
			blockSpec{area: "RB", nums: []int{0, 0, 0, 0}},
		),
		// 4th row
		blockRow(2, 4,
			blockSpec{area: "LB", nums: []int{0, 0, 0, 0}},
			blockSpec{nums: []int{0, 0, 0, 3, 4, 5}},
			blockSpec{nums: ns(6, 16)},
			blockSpec{nums: ns(17, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 46)},
			blockSpec{nums: ns(47, 57)},
			blockSpec{nums: ns(58, 60)},
			blockSpec{area: "RB", nums: []int{0, 0, 0, 0}},
		),
		// 5th row: five wide blocks, no balconies (first row past the cross aisle)
		blockRow(2, 5,
			blockSpec{nums: ns(4, 15)},
			blockSpec{nums: ns(16, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 47)},
			blockSpec{nums: ns(48, 59)},
		),
		// 6th row: same five-block shape shifted one seat wider on each side
		blockRow(2, 6,
			blockSpec{nums: ns(3, 14)},
			blockSpec{nums: ns(15, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 48)},
			blockSpec{nums: ns(49, 60)},
		),
		// 7th row: four blocks; the wide aisle sits between 24 and 25
		blockRow(2, 7,
			blockSpec{nums: ns(2, 13)},
			blockSpec{nums: ns(14, 24)},
			blockSpec{nums: ns(25, 36)},
			blockSpec{nums: ns(37, 49)},
		),
	}
	return FloorMap{Floor: 2, Rows: rows}
}
