package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorRowCounts(t *testing.T) {
	for floor, want := range map[int]int{1: 26, 2: 7, 3: 7} {
		fm, ok := Floor(floor)
		require.True(t, ok)
		assert.Len(t, fm.Rows, want, "floor %d", floor)
	}
}

// The templates are transcribed venue data; these ids pin the transcription
// against the chart, including the narrow front rows, the door spaces in
// rows 20-22, and the missing-seat runs on the third floor.
func TestFloorTemplateKnownSeats(t *testing.T) {
	present := map[int][]string{
		1: {
			"1F-1-23", "1F-1-40", // front row spans 23-40
			"1F-2-20", "1F-2-43",
			"1F-9-13", "1F-9-50",
			"1F-18-7", "1F-19-6",
			"1F-20-5", "1F-20-20", "1F-20-46", "1F-20-58",
			"1F-25-15", // row 25 resumes at 15
			"1F-26-14", "1F-26-49",
		},
		2: {
			"2F-1-LB1", "2F-1-2", "2F-1-61",
			"2F-2-LB7", "2F-2-RB10", "2F-2-62",
			"2F-3-3", "2F-4-3", "2F-4-60",
			"2F-5-4", "2F-5-59",
			"2F-6-3", "2F-6-60",
			"2F-7-2", "2F-7-24", "2F-7-25", "2F-7-49",
		},
		3: {
			"3F-1-LB3", "3F-1-RB6", "3F-1-3",
			"3F-2-LB7", "3F-2-RB9", "3F-2-1", "3F-2-62",
			"3F-3-3", "3F-3-60",
			"3F-4-4", "3F-4-42", "3F-4-50",
			"3F-5-26", "3F-5-43",
			"3F-6-3", "3F-6-43",
			"3F-7-2", "3F-7-44", "3F-7-49", "3F-7-61",
		},
	}
	absent := map[int][]string{
		1: {
			"1F-1-22", "1F-1-41",
			"1F-2-19", "1F-2-44",
			"1F-18-1", "1F-18-6", // row 18 starts at seat 7
			"1F-20-15", "1F-20-47", // door spaces in rows 20-22
			"1F-25-14",
			"1F-26-5", "1F-26-50", // row 26 has no side blocks
		},
		2: {
			"2F-1-1", "2F-1-62",
			"2F-3-LB1", "2F-3-1", "2F-3-2", // third-row balconies are spacers only
			"2F-4-1", "2F-4-61",
			"2F-5-3", "2F-5-60",
			"2F-7-1", "2F-7-50",
		},
		3: {
			"3F-1-LB2", "3F-1-2",
			"3F-3-2", "3F-3-61",
			"3F-4-3", "3F-4-43", "3F-4-49", "3F-4-62", // 43-49 missing in row 4
			"3F-5-44", "3F-5-49", // 44-49 missing in rows 5-6
			"3F-6-44",
			"3F-7-1", "3F-7-62",
		},
	}

	for floor, ids := range present {
		fm, _ := Floor(floor)
		seats := collectSeats(fm)
		for _, id := range ids {
			assert.Contains(t, seats, id)
		}
	}
	for floor, ids := range absent {
		fm, _ := Floor(floor)
		seats := collectSeats(fm)
		for _, id := range ids {
			assert.NotContains(t, seats, id)
		}
	}
}

func TestFirstFloorRowLabelsSitAfterCenterAisles(t *testing.T) {
	fm, _ := Floor(1)
	for _, row := range fm.Rows {
		var labels []int
		for _, cell := range row.Cells {
			if l, ok := cell.(*RowLabel); ok {
				labels = append(labels, l.Value)
			}
		}
		// every row has seats 25 and 37 followed by an aisle, so both
		// labels are present and carry the row's own number
		require.Len(t, labels, 2, "row %d", row.Number)
		assert.Equal(t, []int{row.Number, row.Number}, labels)
	}
}
