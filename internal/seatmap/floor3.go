package seatmap

// Third floor: same block grid as the second floor but with shorter
// balcony stubs starting at seat 3, and missing-seat gaps on house-right
// in rows 4-6 (43-49 absent in row 4, 44-49 in rows 5 and 6) that fill
// back in by row 7.

// ThirdFloor builds the floor 3 template.
func ThirdFloor() FloorMap {
	rows := []Row{
		// 1st row: LB(4) - 8 - 8 - 7 - 12 - 7 - 8 - 8 - RB(4)
		blockRow(3, 1,
			blockSpec{area: "LB", nums: ns(3, 6)},
			blockSpec{nums: ns(3, 10)},
			blockSpec{nums: ns(11, 18)},
			blockSpec{nums: ns(19, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 44)},
			blockSpec{nums: ns(45, 52)},
			blockSpec{nums: ns(53, 60)},
			blockSpec{area: "RB", nums: ns(3, 6)},
		),
		// 2nd row: LB(3) - 8 - 9 - 8 - 12 - 8 - 9 - 8 - RB(3)
		blockRow(3, 2,
			blockSpec{area: "LB", nums: ns(7, 9)},
			blockSpec{nums: ns(1, 8)},
			blockSpec{nums: ns(9, 17)},
			blockSpec{nums: ns(18, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 45)},
			blockSpec{nums: ns(46, 54)},
			blockSpec{nums: ns(55, 62)},
			blockSpec{area: "RB", nums: ns(7, 9)},
		),
		// 3rd row: balconies end; 5 - 10 - 8 - 12 - 8 - 10 - 5
		blockRow(3, 3,
			blockSpec{nums: ns(3, 7)},
			blockSpec{nums: ns(8, 17)},
			blockSpec{nums: ns(18, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 45)},
			blockSpec{nums: ns(46, 55)},
			blockSpec{nums: ns(56, 60)},
		),
		// 4th row: seats 43-49 are missing; 42 is followed by 50
		blockRow(3, 4,
			blockSpec{nums: ns(4, 15)},
			blockSpec{nums: ns(16, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 42)},
			blockSpec{nums: ns(50, 61)},
		),
		// 5th row: seats 44-49 are missing
		blockRow(3, 5,
			blockSpec{nums: ns(4, 15)},
			blockSpec{nums: ns(16, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 43)},
			blockSpec{nums: ns(50, 61)},
		),
		// 6th row: seats 44-49 still missing, left blocks one seat wider
		blockRow(3, 6,
			blockSpec{nums: ns(3, 14)},
			blockSpec{nums: ns(15, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 43)},
			blockSpec{nums: ns(50, 61)},
		),
		// 7th row: 38-49 fills back in; five full twelve-seat blocks
		blockRow(3, 7,
			blockSpec{nums: ns(2, 13)},
			blockSpec{nums: ns(14, 25)},
			blockSpec{nums: ns(26, 37)},
			blockSpec{nums: ns(38, 49)},
			blockSpec{nums: ns(50, 61)},
		),
	}
	return FloorMap{Floor: 3, Rows: rows}
}
