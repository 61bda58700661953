package entity

import (
	"fmt"
	"strconv"
)

// Showroom is one of the physical rooms of the cinema.
type Showroom string

const (
	Showroom1 Showroom = "Showroom 1"
	Showroom2 Showroom = "Showroom 2"
	Showroom3 Showroom = "Showroom 3"
)

// SeatLayout describes a rectangular room. Rows are lettered from A.
type SeatLayout struct {
	Rows int
	Cols int
}

func (l SeatLayout) Capacity() int { return l.Rows * l.Cols }

// Contains reports whether seat (e.g. "C7") exists in the layout.
func (l SeatLayout) Contains(seat string) bool {
	if len(seat) < 2 {
		return false
	}
	row := int(seat[0]-'A') + 1
	if row < 1 || row > l.Rows {
		return false
	}
	col, err := strconv.Atoi(seat[1:])
	if err != nil {
		return false
	}
	return col >= 1 && col <= l.Cols
}

var showroomLayouts = map[Showroom]SeatLayout{
	Showroom1: {Rows: 6, Cols: 10},
	Showroom2: {Rows: 8, Cols: 12},
	Showroom3: {Rows: 5, Cols: 8},
}

var showroomOrder = []Showroom{Showroom1, Showroom2, Showroom3}

func IsShowroom(name string) bool {
	_, ok := showroomLayouts[Showroom(name)]
	return ok
}

func LayoutOf(showroom Showroom) (SeatLayout, error) {
	layout, ok := showroomLayouts[showroom]
	if !ok {
		return SeatLayout{}, fmt.Errorf("unknown showroom %q", showroom)
	}
	return layout, nil
}

func ShowroomNames() []string {
	names := make([]string, len(showroomOrder))
	for i, s := range showroomOrder {
		names[i] = string(s)
	}
	return names
}
