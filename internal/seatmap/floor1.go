package seatmap

// First floor: 26 rows of plain seats transcribed row by row from the
// venue chart.  Each row is an explicit run of seat numbers with zeros
// marking aisles and structural gaps; the aisle directly after seat 25
// or 37 carries the printed row number.  Rows 20-22 blank out the door
// spaces where seats 14-19 and 47-49 would sit, row 25 is missing seat
// 14, and row 26 has no side blocks at all.  This is copied layout data,
// not logic.

// cat joins number groups into one row config.
func cat(groups ...[]int) []int {
	var out []int
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// gapN emits n structural blank slots.
func gapN(n int) []int { return make([]int, n) }

// explicitRow materializes a first-floor row from a config of seat
// numbers and zero gaps.
func explicitRow(num int, nums []int) Row {
	cells := make([]Cell, 0, len(nums))
	for i, n := range nums {
		if n == 0 {
			if i > 0 && (nums[i-1] == 25 || nums[i-1] == 37) {
				cells = append(cells, &RowLabel{Value: num})
			} else {
				cells = append(cells, Gap{})
			}
			continue
		}
		cells = append(cells, newSeat(1, num, "", n))
	}
	return Row{Number: num, Cells: cells}
}

// FirstFloor builds the floor 1 template.
func FirstFloor() FloorMap {
	aisle := gapN(1)
	center := ns(26, 37)

	rows5to8 := cat(ns(14, 25), aisle, center, aisle, ns(38, 49))
	rows12to13 := cat(ns(9, 13), aisle, ns(14, 25), aisle, center, aisle, ns(38, 49), aisle, ns(50, 54))
	rows14to17 := cat(ns(8, 13), aisle, ns(14, 25), aisle, center, aisle, ns(38, 49), aisle, ns(50, 55))
	// door spaces replace seats 14-19 and 47-49
	rows20to22 := cat(ns(5, 13), aisle, gapN(6), ns(20, 25), aisle, center, aisle, ns(38, 46), gapN(3), aisle, ns(50, 58))
	rows23to24 := cat(ns(5, 13), aisle, ns(14, 25), aisle, center, aisle, ns(38, 49), aisle, ns(50, 58))

	configs := []struct {
		num  int
		nums []int
	}{
		{1, cat(ns(23, 25), aisle, center, aisle, ns(38, 40))},
		{2, cat(ns(20, 25), aisle, center, aisle, ns(38, 43))},
		{3, cat(ns(18, 25), aisle, center, aisle, ns(38, 45))},
		{4, cat(ns(16, 25), aisle, center, aisle, ns(38, 47))},
		{5, rows5to8},
		{6, rows5to8},
		{7, rows5to8},
		{8, rows5to8},
		{9, cat(ns(13, 13), aisle, ns(14, 25), aisle, center, aisle, ns(38, 49), aisle, ns(50, 50))},
		{10, cat(ns(12, 13), aisle, ns(14, 25), aisle, center, aisle, ns(38, 49), aisle, ns(50, 51))},
		{11, cat(ns(10, 13), aisle, ns(14, 25), aisle, center, aisle, ns(38, 49), aisle, ns(50, 53))},
		{12, rows12to13},
		{13, rows12to13},
		{14, rows14to17},
		{15, rows14to17},
		{16, rows14to17},
		{17, rows14to17},
		{18, cat(ns(7, 13), aisle, ns(14, 25), aisle, center, aisle, ns(38, 49), aisle, ns(50, 56))},
		{19, cat(ns(6, 13), aisle, ns(14, 25), aisle, center, aisle, ns(38, 49), aisle, ns(50, 57))},
		{20, rows20to22},
		{21, rows20to22},
		{22, rows20to22},
		{23, rows23to24},
		{24, rows23to24},
		// seat 14 is missing from row 25
		{25, cat(ns(5, 13), aisle, gapN(1), ns(15, 25), aisle, center, aisle, ns(38, 49), aisle, ns(50, 58))},
		{26, cat(gapN(9), aisle, ns(14, 25), aisle, center, aisle, ns(38, 49), aisle, gapN(9))},
	}

	rows := make([]Row, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, explicitRow(c.num, c.nums))
	}
	return FloorMap{Floor: 1, Rows: rows}
}
